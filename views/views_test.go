package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PropertiPro/app/models"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"/images/a.jpg", "/images/a.jpg"},
		{"javascript:alert(1)", models.PlaceholderImage},
		{"data:text/html;base64,PHNjcmlwdD4=", models.PlaceholderImage},
		{"//evil.example.com/a.jpg", models.PlaceholderImage},
		{"", models.PlaceholderImage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(ImageURL(tt.in)), tt.in)
	}
}

func TestEngineRendersPartial(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "partials/errors", []string{"Judul wajib diisi"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<li>Judul wajib diisi</li>")
}
