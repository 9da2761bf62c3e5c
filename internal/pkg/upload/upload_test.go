package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySource struct {
	name string
	data []byte
}

func (s memorySource) Filename() string { return s.name }

func (s memorySource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, url string) image.Image {
	t.Helper()
	_, payload, ok := strings.Cut(url, ";base64,")
	require.True(t, ok)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestValidateImageBySniff(t *testing.T) {
	pngHead := pngBytes(t, 2, 2)

	tests := []struct {
		name     string
		filename string
		head     []byte
		want     string
		wantErr  error
	}{
		{"png", "rumah.png", pngHead, "image/png", nil},
		{"upper case extension", "RUMAH.PNG", pngHead, "image/png", nil},
		{"webp extension", "rumah.webp", pngHead, "", ErrUnsupportedExtension},
		{"html disguised", "rumah.jpg", []byte("<!DOCTYPE html><html></html>"), "", ErrScriptableContent},
		{"svg disguised", "rumah.png", []byte(`<?xml version="1.0"?><svg></svg>`), "", ErrScriptableContent},
		{"plain text", "rumah.gif", []byte("hello"), "", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateImageBySniff(tt.filename, tt.head)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadAsDataURL_KeepsSmallPNG(t *testing.T) {
	url, err := ReadAsDataURL(context.Background(), memorySource{"denah.png", pngBytes(t, 40, 20)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	img := decodeDataURL(t, url)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestReadAsDataURL_Downscales(t *testing.T) {
	url, err := ReadAsDataURL(context.Background(), memorySource{"tampak-depan.png", pngBytes(t, 2000, 1000)})
	require.NoError(t, err)

	img := decodeDataURL(t, url)
	assert.Equal(t, MaxImageEdge, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestReadAsDataURL_Rejects(t *testing.T) {
	_, err := ReadAsDataURL(context.Background(), memorySource{"notes.png", []byte("just some text")})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadAsDataURL(ctx, memorySource{"denah.png", pngBytes(t, 4, 4)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsStoredImage(t *testing.T) {
	small := base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))
	wide := base64.StdEncoding.EncodeToString(pngBytes(t, MaxImageEdge+1, 1))

	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"png data url", "data:image/png;base64," + small, true},
		{"https url", "https://cdn.example.com/rumah.jpg", true},
		{"http url", "http://cdn.example.com/rumah.jpg", true},
		{"html data url", "data:text/html;base64,PHNjcmlwdD4=", false},
		{"declared png with html body", "data:image/png;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==", false},
		{"png declared as jpeg", "data:image/jpeg;base64," + small, false},
		{"broken base64", "data:image/png;base64,@@@", false},
		{"larger than the pipeline emits", "data:image/png;base64," + wide, false},
		{"plain text", "not-an-image-at-all", false},
		{"relative path", "/images/a.jpg", false},
		{"url without host", "https://", false},
		{"url with quote", "https://cdn.example.com/a\"onerror=x.jpg", false},
		{"overlong url", "https://cdn.example.com/" + strings.Repeat("a", MaxRemoteURLLength), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStoredImage(tt.ref))
		})
	}
}

func TestIsStoredImage_AcceptsPipelineOutput(t *testing.T) {
	url, err := ReadAsDataURL(context.Background(), memorySource{"denah.png", pngBytes(t, 3000, 10)})
	require.NoError(t, err)
	assert.True(t, IsStoredImage(url))
}
