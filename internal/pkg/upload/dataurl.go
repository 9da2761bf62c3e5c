package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// MaxImageEdge bounds the longer side of a stored image in pixels
	MaxImageEdge  = 1600
	MaxImageBytes = 10 << 20
	jpegQuality   = 85

	// MaxRemoteURLLength bounds http(s) image references kept on a listing
	MaxRemoteURLLength = 2048
)

var storedMimes = []string{"image/jpeg", "image/png", "image/gif"}

// maxDataURLLength covers the base64 form of the largest accepted image plus its prefix
var maxDataURLLength = len("data:image/jpeg;base64,") + base64.StdEncoding.EncodedLen(MaxImageBytes)

var ErrImageTooLarge = errors.New("Ukuran gambar maksimal 10 MB")

// Source is a selected file that can be opened for reading
type Source interface {
	Filename() string
	Open() (io.ReadCloser, error)
}

type fileHeaderSource struct {
	fh *multipart.FileHeader
}

// FromFileHeader adapts an uploaded multipart file
func FromFileHeader(fh *multipart.FileHeader) Source {
	return fileHeaderSource{fh: fh}
}

func (s fileHeaderSource) Filename() string { return s.fh.Filename }

func (s fileHeaderSource) Open() (io.ReadCloser, error) { return s.fh.Open() }

// ReadAsDataURL reads src, checks that it is an image, applies the EXIF
// orientation, shrinks it to MaxImageEdge and returns it as a base64 data URL.
// PNG and GIF input is stored as PNG, everything else as JPEG.
func ReadAsDataURL(ctx context.Context, src Source) (string, error) {
	rc, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src.Filename(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Filename(), err)
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mime, err := ValidateImageBySniff(src.Filename(), head)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", src.Filename(), err)
	}
	img = fit(img)

	format, outMime := imaging.JPEG, "image/jpeg"
	if mime == "image/png" || mime == "image/gif" {
		format, outMime = imaging.PNG, "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode %s: %w", src.Filename(), err)
	}
	return "data:" + outMime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxImageEdge && b.Dy() <= MaxImageEdge {
		return img
	}
	return imaging.Fit(img, MaxImageEdge, MaxImageEdge, imaging.Lanczos)
}

// IsStoredImage reports whether ref is an image reference a listing may keep:
// an http(s) URL with a host, or a base64 raster data URL whose content
// decodes as the declared type within MaxImageEdge.
func IsStoredImage(ref string) bool {
	if strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://") {
		if len(ref) > MaxRemoteURLLength || strings.ContainsAny(ref, " \t\r\n\"'<>") {
			return false
		}
		u, err := url.Parse(ref)
		return err == nil && u.Host != ""
	}
	if len(ref) > maxDataURLLength {
		return false
	}
	for _, mime := range storedMimes {
		payload, ok := strings.CutPrefix(ref, "data:"+mime+";base64,")
		if !ok {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil || http.DetectContentType(raw) != mime {
			return false
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
		return err == nil && cfg.Width > 0 && cfg.Height > 0 &&
			cfg.Width <= MaxImageEdge && cfg.Height <= MaxImageEdge
	}
	return false
}
