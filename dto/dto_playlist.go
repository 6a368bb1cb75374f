package dto

type CreatePlaylistReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
