package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIResponseSuccessFlag(t *testing.T) {
	ok := NewAPIResponse(http.StatusOK, CommentedResp{Commented: true}, "Commented successfully")
	assert.True(t, ok.Success)
	assert.Equal(t, http.StatusOK, ok.StatusCode)

	bad := NewAPIResponse(http.StatusBadRequest, nil, "nope")
	assert.False(t, bad.Success)
}
