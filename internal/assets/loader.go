package assets

import (
	"image/color"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/engine/font"
	"github.com/Faultbox/scenelab/internal/engine/texture"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Loader decodes assets in goroutines and delivers results through a Queue.
type Loader struct {
	manager *Manager
	queue   *Queue
	log     *zap.Logger
	wg      sync.WaitGroup
}

// NewLoader creates a loader over m posting to q.
func NewLoader(m *Manager, q *Queue) *Loader {
	return &Loader{manager: m, queue: q, log: logger.Named("assets")}
}

// Queue returns the completion queue.
func (l *Loader) Queue() *Queue { return l.queue }

// Wait blocks until every started load has posted its result.
func (l *Loader) Wait() { l.wg.Wait() }

func (l *Loader) run(fn func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
}

// Placeholder is the checker shown while a texture loads and kept when it
// fails.
func Placeholder(name string) *texture.Texture {
	return texture.New(name, texture.Checker(64, 8, color.RGBA{200, 200, 200, 255}, color.RGBA{90, 90, 90, 255}))
}

// Texture returns a handle immediately and fills it when decoding
// finishes. On failure the checker placeholder stays. done, if set, runs on
// the main thread either way.
func (l *Loader) Texture(name string, space texture.ColorSpace, done func(*texture.Texture, error)) *texture.Texture {
	tex := Placeholder(name)
	tex.ColorSpace = space
	l.run(func() {
		data, err := l.manager.Load(name)
		var decoded *texture.Texture
		if err == nil {
			decoded, err = texture.Decode(name, data)
		}
		l.queue.Post(func() {
			if err != nil {
				l.log.Warn("texture load failed, using checker", zap.String("path", name), zap.Error(err))
			} else if !tex.Disposed() {
				tex.RGBA, tex.HDR, tex.Mapping = decoded.RGBA, decoded.HDR, decoded.Mapping
				tex.Version++
			}
			if done != nil {
				done(tex, err)
			}
		})
	})
	return tex
}

// HDR decodes an equirectangular environment map and halves it until it is
// at most maxWidth wide. done receives nil and the error on failure.
func (l *Loader) HDR(name string, maxWidth int, done func(*texture.Texture, error)) {
	l.run(func() {
		data, err := l.manager.Load(name)
		var tex *texture.Texture
		if err == nil {
			tex, err = texture.Decode(name, data)
		}
		if err == nil && tex.HDR != nil {
			tex.HDR = texture.Downsample(tex.HDR, maxWidth)
		}
		l.queue.Post(func() {
			if err != nil {
				l.log.Warn("environment map load failed", zap.String("path", name), zap.Error(err))
				tex = nil
			}
			done(tex, err)
		})
	})
}

// Font parses a font file, falling back to the embedded face on failure.
// done receives the font in use and the original error, if any.
func (l *Loader) Font(name string, done func(*font.Font, error)) {
	l.run(func() {
		data, err := l.manager.Load(name)
		var f *font.Font
		if err == nil {
			f, err = font.Parse(name, data)
		}
		if err != nil {
			if fb, fbErr := font.Fallback(); fbErr == nil {
				f = fb
			}
		}
		l.queue.Post(func() {
			if err != nil {
				l.log.Warn("font load failed, using fallback", zap.String("path", name), zap.Error(err))
			}
			done(f, err)
		})
	})
}
