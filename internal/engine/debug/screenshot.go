package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// Screenshots writes PNG captures named <prefix>_<demo>_<timestamp>.png.
type Screenshots struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// NewScreenshots creates a capture target writing to dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{Dir: dir, Prefix: prefix, now: time.Now}
}

// SaveGLPixels saves a bottom-up RGBA read-back of width x height.
func (s *Screenshots) SaveGLPixels(pixels []byte, width, height int, label string) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("screenshot: have %d bytes, want %d", len(pixels), width*height*4)
	}
	img := &image.RGBA{Pix: pixels, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	return s.Save(texture.FlipY(img), label)
}

// Save writes img and returns the file path.
func (s *Screenshots) Save(img image.Image, label string) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return "", fmt.Errorf("screenshot: create dir: %w", err)
		}
	}
	name := fmt.Sprintf("%s_%s_%s.png", s.Prefix, label, s.now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("screenshot: encode: %w", err)
	}
	return path, nil
}
