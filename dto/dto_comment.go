package dto

type AddCommentReq struct {
	Content string `json:"content"`
}

// UpdateCommentReq keys the target by oldContent, or by commentId when sent.
type UpdateCommentReq struct {
	CommentID  string `json:"commentId,omitempty"`
	OldContent string `json:"oldContent"`
	Content    string `json:"content"`
}

type DeleteCommentReq struct {
	CommentID string `json:"commentId,omitempty"`
	Content   string `json:"content"`
}

type CommentedResp struct {
	Commented bool `json:"Commented"`
}

type DeletedResp struct {
	Deleted bool `json:"Deleted"`
}
