package controllers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pllus/videotube/dto"
	"github.com/pllus/videotube/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
	Timeout time.Duration
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterReq  true  "Username, email and password"
// @Success      200  {object}  dto.APIResponse{data=models.User}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	u, err := h.Service.Register(ctx, services.RegisterInput{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, u, "User registered successfully"))
}

// Login godoc
// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginReq  true  "Email and password"
// @Success      200  {object}  dto.APIResponse{data=dto.LoginResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	tok, u, err := h.Service.Login(ctx, services.LoginInput{Email: body.Email, Password: body.Password})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, dto.LoginResp{AccessToken: tok, User: *u}, "User logged in successfully"))
}
