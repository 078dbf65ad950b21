package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharu/snaptag/backend/internal/models"
)

func TestCheckExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{filename: "photo.jpg", want: "jpg"},
		{filename: "photo.JPEG", want: "jpeg"},
		{filename: "photo.png", want: "png"},
		{filename: "photo.webp", want: "webp"},
		{filename: "archive.tar.png", want: "png"},
		{filename: "script.exe", wantErr: true},
		{filename: "document.pdf", wantErr: true},
		{filename: "noextension", wantErr: true},
		{filename: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			ext, err := checkExtension(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrExtensionNotAllowed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ext)
		})
	}
}

func TestNewObjectKey(t *testing.T) {
	t.Parallel()

	keyPattern := regexp.MustCompile(`^\d+-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`)

	first := newObjectKey("jpg")
	second := newObjectKey("jpg")

	assert.Regexp(t, keyPattern, first)
	assert.Regexp(t, keyPattern, second)

	// Fresh key per call: retried uploads never collide.
	assert.NotEqual(t, first, second)
}
