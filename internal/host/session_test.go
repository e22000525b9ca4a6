package host

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	cfg.ScreenshotDir = t.TempDir()
	return cfg
}

func startSession(t *testing.T, cfg *config.Config) (*Session, *demotest.Renderer) {
	t.Helper()
	r := &demotest.Renderer{}
	sess, err := NewSession(cfg, "", r, demotest.NewSurface(800, 600))
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	return sess, r
}

func TestSessionStartsConfiguredDemo(t *testing.T) {
	cfg := testConfig(t)
	sess, r := startSession(t, cfg)

	name, preset := sess.Selection()
	assert.Empty(t, name, "nothing runs before the first frame")
	assert.Empty(t, preset)

	sess.Frame()
	name, preset = sess.Selection()
	assert.Equal(t, "basics", name)
	assert.Equal(t, "default", preset)
	assert.Equal(t, 1, r.Renders)
}

func TestSessionRejectsUnknownDemo(t *testing.T) {
	cfg := testConfig(t)
	cfg.Demo.Name = "nope"
	_, err := NewSession(cfg, "", &demotest.Renderer{}, demotest.NewSurface(800, 600))
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestSessionSelectIndex(t *testing.T) {
	sess, _ := startSession(t, testConfig(t))
	sess.Frame()

	sess.SelectIndex(6)
	sess.Frame()
	name, preset := sess.Selection()
	assert.Equal(t, "shadow", name)
	assert.Equal(t, "spot", preset)

	sess.SelectIndex(42)
	sess.Frame()
	name, _ = sess.Selection()
	assert.Equal(t, "shadow", name)
}

func TestSessionApplyReloadedConfig(t *testing.T) {
	sess, _ := startSession(t, testConfig(t))
	sess.Frame()
	first := sess.Switcher.Current()

	same := config.Default()
	sess.Apply(same)
	sess.Frame()
	assert.Same(t, first, sess.Switcher.Current(), "an unchanged selection keeps the running demo")

	next := config.Default()
	next.Demo.Name = "light"
	next.Demo.Preset = "spot"
	next.Logging.Level = "debug"
	t.Cleanup(func() { logger.SetLevel("info") })
	sess.Apply(next)
	assert.Equal(t, zapcore.DebugLevel, logger.Level())
	sess.Frame()
	name, preset := sess.Selection()
	assert.Equal(t, "light", name)
	assert.Equal(t, "spot", preset)

	bad := config.Default()
	bad.Demo.Name = "light"
	bad.Demo.Preset = "laser"
	sess.Apply(bad)
	sess.Frame()
	_, preset = sess.Selection()
	assert.Equal(t, "spot", preset)
}

type fakeCapture struct{}

func (fakeCapture) Capture() ([]byte, int, int) {
	return make([]byte, 2*2*4), 2, 2
}

func TestSessionScreenshot(t *testing.T) {
	cfg := testConfig(t)
	sess, _ := startSession(t, cfg)
	sess.Frame()

	path, err := sess.Screenshot(fakeCapture{})
	require.NoError(t, err)
	assert.Contains(t, path, "basics-default")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDemoOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Font = "Other.ttf"
	cfg.Demo.Preset = "plain"
	cfg.Graphics.MaxPixelRatio = 1.5

	opts := DemoOptions(cfg, nil)
	assert.Equal(t, "Other.ttf", opts.Assets.Font)
	assert.Equal(t, "plain", opts.Preset)
	assert.Equal(t, float32(1.5), opts.MaxPixelRatio)
	assert.Equal(t, 1024, opts.Assets.EnvMaxWidth)
}

func TestHeadless(t *testing.T) {
	cfg := testConfig(t)
	app, err := Headless(cfg, "transform", "")
	require.NoError(t, err)
	defer app.Close()

	st := app.Context().Scene.CollectStats()
	// Ground, big sphere, eight tori and the small sphere.
	assert.GreaterOrEqual(t, st.Meshes, 11)
	assert.Positive(t, st.Triangles)

	_, err = Headless(cfg, "material", "shiny")
	assert.ErrorIs(t, err, demo.ErrUnknownPreset)
	_, err = Headless(cfg, "nope", "")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}
