package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/graphics"
)

func TestColorsToken(t *testing.T) {
	colors := LightColors()
	assert.Equal(t, colors.Main, colors.Token(IntentMain))
	assert.Equal(t, colors.Error, colors.Token(IntentDanger))
	assert.Equal(t, colors.Neutral, colors.Token(IntentNeutral))

	surface := colors.Token(IntentSurface)
	assert.Equal(t, colors.Surface, surface.Color)
	assert.Equal(t, colors.OnSurface, surface.OnColor)
	assert.Equal(t, colors.SurfaceInverse, surface.Variant)
}

func TestParseIntent(t *testing.T) {
	for _, intent := range Intents {
		got, err := ParseIntent(intent.String())
		require.NoError(t, err)
		assert.Equal(t, intent, got)
	}
	_, err := ParseIntent("shiny")
	assert.Error(t, err)
}

func TestCopyWith(t *testing.T) {
	base := DefaultLight()
	radii := DefaultRadii()
	radii.Medium = 12

	custom := base.CopyWith(nil, &radii, nil)

	assert.Equal(t, 12.0, custom.Radii.Medium)
	assert.Equal(t, 8.0, base.Radii.Medium, "original must not change")
	assert.Equal(t, base.Colors, custom.Colors)
}

func TestParse_PartialOverrides(t *testing.T) {
	th, err := Parse([]byte(`
version: 1.2.0
name: brand
colors:
  main:
    color: "#112233"
    on_color: white
  support: "tomato"
  surface: "#FAFAFA"
radii:
  medium: 10
dims:
  dim3: 0.5
`))
	require.NoError(t, err)

	defaults := DefaultLight()
	assert.Equal(t, "brand", th.Name)
	assert.Equal(t, graphics.RGB(0x11, 0x22, 0x33), th.Colors.Main.Color)
	assert.Equal(t, graphics.ColorWhite, th.Colors.Main.OnColor)
	assert.Equal(t, defaults.Colors.Main.Container, th.Colors.Main.Container)
	assert.Equal(t, graphics.RGB(255, 99, 71), th.Colors.Support.Color)
	assert.Equal(t, defaults.Colors.Support.OnColor, th.Colors.Support.OnColor)
	assert.Equal(t, graphics.RGB(0xFA, 0xFA, 0xFA), th.Colors.Surface)
	assert.Equal(t, 10.0, th.Radii.Medium)
	assert.Equal(t, defaults.Radii.Small, th.Radii.Small)
	assert.Equal(t, 0.5, th.Dims.Dim3)
}

func TestParse_DarkBase(t *testing.T) {
	th, err := Parse([]byte("version: 1.0.0\nbase: dark\n"))
	require.NoError(t, err)
	assert.Equal(t, BrightnessDark, th.Brightness)
	assert.Equal(t, DarkColors(), th.Colors)
	assert.Equal(t, "spark-dark", th.Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		token string
	}{
		{"missing version", "name: x\n", "version"},
		{"bad version", "version: banana\n", "version"},
		{"future major", "version: 2.0.0\n", "version"},
		{"bad base", "version: 1.0.0\nbase: sepia\n", "base"},
		{"bad color", "version: 1.0.0\ncolors:\n  main: \"#zzzzzz\"\n", "colors.main"},
		{"unknown color", "version: 1.0.0\ncolors:\n  chartreuse: red\n", "colors.chartreuse"},
		{"unknown role field", "version: 1.0.0\ncolors:\n  main:\n    glow: red\n", "colors.main.glow"},
		{"role on single", "version: 1.0.0\ncolors:\n  surface:\n    color: red\n", "colors.surface"},
		{"negative radius", "version: 1.0.0\nradii:\n  small: -1\n", "radii.small"},
		{"dim above one", "version: 1.0.0\ndims:\n  dim1: 2\n", "dims.dim1"},
		{"unknown spacing", "version: 1.0.0\nspacing:\n  huge: 100\n", "spacing.huge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, errors.KindTheme, errors.KindOf(err))
			assert.True(t, errors.Is(err, &errors.TokenError{Token: tt.token}), "error %v should name token %s", err, tt.token)
		})
	}
}

func TestParse_UnknownTopLevelKey(t *testing.T) {
	_, err := Parse([]byte("version: 1.0.0\nfonts: {}\n"))
	require.Error(t, err)
	assert.Equal(t, errors.KindTheme, errors.KindOf(err))
}

func TestExportRoundTrip(t *testing.T) {
	for _, th := range []*Theme{DefaultLight(), DefaultDark()} {
		custom := th.Copy()
		custom.Name = "custom-" + th.Name
		custom.Colors.Info.Variant = graphics.RGBA8(1, 2, 3, 0x80)
		custom.Spacing.Large = 20

		data, err := Export(custom)
		require.NoError(t, err)

		parsed, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, custom, parsed)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	th := DefaultDark()
	th.Name = "saved"

	require.NoError(t, Save(th, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, th, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var se *errors.SparkError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errors.KindTheme, se.Kind)
	assert.Contains(t, se.Path, "nope.yaml")
}

func TestWatcher_Reload(t *testing.T) {
	errors.SetHandler(&discardHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nname: first\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	var names []string
	w.Theme().AddListener(func(th *Theme) { names = append(names, th.Name) })

	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nname: second\n"), 0o644))
	w.Reload()

	// A broken file keeps the last good theme.
	require.NoError(t, os.WriteFile(path, []byte("version: 9.0.0\n"), 0o644))
	w.Reload()

	assert.Equal(t, []string{"second"}, names)
	assert.Equal(t, "second", w.Theme().Value().Name)
}

func TestWatcher_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nname: first\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	dispatched := make(chan func(), 8)
	w.Dispatch = func(fn func()) { dispatched <- fn }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nname: live\n"), 0o644))

	select {
	case fn := <-dispatched:
		fn()
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}
	assert.Eventually(t, func() bool { return w.Theme().Value().Name == "live" }, time.Second, 10*time.Millisecond)
}

type discardHandler struct{}

func (discardHandler) HandleError(*errors.SparkError) {}
func (discardHandler) HandlePanic(*errors.PanicError) {}
