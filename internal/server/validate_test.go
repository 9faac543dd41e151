package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReviewRequest_Valid(t *testing.T) {
	req, err := DecodeReviewRequest([]byte(`{"architectureText":"# Arch","repoUrl":"https://github.com/acme/shop","model":"llama3"}`))
	require.NoError(t, err)
	assert.Equal(t, "# Arch", req.ArchitectureText)
	assert.Equal(t, "https://github.com/acme/shop", req.RepoURL)
	assert.Equal(t, "llama3", req.Model)
}

func TestDecodeReviewRequest_EmptyOptionalFields(t *testing.T) {
	req, err := DecodeReviewRequest([]byte(`{"architectureText":"x","repoUrl":"","model":""}`))
	require.NoError(t, err)
	assert.Empty(t, req.RepoURL)
	assert.Empty(t, req.Model)
}

func TestDecodeReviewRequest_Length(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr string
	}{
		{"empty", 0, "Architecture text is required"},
		{"max", MaxArchitectureTextLength, ""},
		{"over max", MaxArchitectureTextLength + 1, "Architecture text is too large (max 100KB)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"architectureText":"` + strings.Repeat("a", tt.length) + `"}`
			req, err := DecodeReviewRequest([]byte(body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, req.ArchitectureText, tt.length)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "error %v", err)
			require.Len(t, verr.Details, 1)
			assert.Equal(t, "architectureText", verr.Details[0].Path)
			assert.Equal(t, tt.wantErr, verr.Details[0].Message)
		})
	}
}

func TestDecodeReviewRequest_CountsCharacters(t *testing.T) {
	body := `{"architectureText":"` + strings.Repeat("é", MaxArchitectureTextLength) + `"}`
	_, err := DecodeReviewRequest([]byte(body))
	assert.NoError(t, err)
}

func TestDecodeReviewRequest_InvalidRepoURL(t *testing.T) {
	_, err := DecodeReviewRequest([]byte(`{"architectureText":"x","repoUrl":"not-a-url"}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 1)
	assert.Equal(t, FieldError{Path: "repoUrl", Message: "Invalid repository URL"}, verr.Details[0])
}

func TestDecodeReviewRequest_Missing(t *testing.T) {
	_, err := DecodeReviewRequest([]byte(`{}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 1)
	assert.Equal(t, FieldError{Path: "architectureText", Message: "Architecture text is required"}, verr.Details[0])
}

func TestDecodeReviewRequest_WrongTypes(t *testing.T) {
	_, err := DecodeReviewRequest([]byte(`{"architectureText":42,"model":7}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	paths := make([]string, 0, len(verr.Details))
	for _, d := range verr.Details {
		paths = append(paths, d.Path)
	}
	assert.ElementsMatch(t, []string{"architectureText", "model"}, paths)
}

func TestDecodeReviewRequest_NotJSON(t *testing.T) {
	for _, body := range []string{`{"architectureText":`, `[]`, `null`} {
		_, err := DecodeReviewRequest([]byte(body))
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "body %s: %v", body, err)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Details: []FieldError{{Path: "repoUrl", Message: "Invalid repository URL"}, {Message: "bad"}}}
	assert.Equal(t, "validation error: repoUrl: Invalid repository URL; bad", err.Error())
}
