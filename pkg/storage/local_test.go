package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"png within limit", "image/png", 1024, nil},
		{"jpeg at limit", "image/jpeg", MaxImageSize, nil},
		{"oversized image", "image/png", MaxImageSize + 1, ErrFileTooLarge},
		{"pdf rejected", "application/pdf", 1024, ErrUnsupportedType},
		{"text rejected", "text/plain", 10, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.contentType, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	name, err := GenerateFilename("portrait.PNG")
	require.NoError(t, err)

	other, err := GenerateFilename("portrait.PNG")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".PNG"), "original extension is preserved")
	assert.NotEqual(t, name, other, "names must not collide")
}

func TestGenerateFilenameWithoutExtension(t *testing.T) {
	name, err := GenerateFilename("avatar")
	require.NoError(t, err)

	assert.NotEmpty(t, name)
	assert.False(t, strings.Contains(name, "."))
}
