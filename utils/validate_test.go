package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type sample struct {
	Content string        `json:"content" validate:"required,notblank"`
	Video   bson.ObjectID `json:"videoId" validate:"required"`
	Email   string        `json:"email"   validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	vid := bson.NewObjectID()

	tests := []struct {
		name    string
		in      sample
		wantMsg string
	}{
		{name: "valid", in: sample{Content: "hi", Video: vid}},
		{name: "empty content", in: sample{Content: "", Video: vid}, wantMsg: MsgFieldsRequired},
		{name: "blank content", in: sample{Content: "   ", Video: vid}, wantMsg: MsgFieldsRequired},
		{name: "zero video", in: sample{Content: "hi"}, wantMsg: MsgFieldsRequired},
		{name: "bad email", in: sample{Content: "hi", Video: vid, Email: "nope"}, wantMsg: "Invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.NotEmpty(t, apiErr.Errors)
		})
	}
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	err := ValidateStruct(sample{Video: bson.NewObjectID()})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"content is required"}, apiErr.Errors)
}

func TestNewAPIErrorDefaults(t *testing.T) {
	e := NewAPIError(http.StatusNotFound, "")
	assert.Equal(t, "Not Found", e.Message)
	assert.False(t, e.Success)
	assert.NotNil(t, e.Errors)
	assert.Equal(t, "404: Not Found", e.Error())
}
