package dto

import "github.com/pllus/videotube/internal/models"

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}
