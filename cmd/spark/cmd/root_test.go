package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
	"github.com/go-drift/spark/pkg/theme"
)

// run executes the CLI with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		logging.SetDefault(nil)
		errors.SetHandler(nil)
	})
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-02")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "spark 1.2.3 (commit abc123, built 2026-01-02")
}

func TestHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "showcase")
	assert.Contains(t, out, "theme")
}

func TestThemeExport_Stdout(t *testing.T) {
	out, err := run(t, "theme", "export", "--dark")
	require.NoError(t, err)

	th, err := theme.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultDark(), th)
}

func TestThemeExport_CompletesConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(src, []byte("version: 1.0.0\nname: brand\nradii:\n  medium: 11\n"), 0o644))
	dst := filepath.Join(dir, "full.yaml")

	out, err := run(t, "theme", "export", "--theme", src, "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dst)

	th, err := theme.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, "brand", th.Name)
	assert.Equal(t, 11.0, th.Radii.Medium)
	assert.Equal(t, theme.DefaultLight().Colors, th.Colors)
}

func TestThemeValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("version: 1.0.0\nname: good\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("version: 1.0.0\ncolors:\n  main: \"#nothex\"\n"), 0o644))

	out, err := run(t, "theme", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.yaml: ok")

	out, err = run(t, "theme", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "colors.main")
}

func TestConfig_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
theme:
  dark: true
showcase:
  tick: 20ms
`), 0o644))

	var stderr bytes.Buffer
	a := &app{cfgFile: path, v: viper.New(), stdout: io.Discard, stderr: &stderr}
	t.Setenv("SPARK_SHOWCASE_STEP", "250ms")
	t.Cleanup(func() {
		logging.SetDefault(nil)
		errors.SetHandler(nil)
	})
	require.NoError(t, a.initConfig())

	opts, closeFn, err := a.showcaseOptions()
	require.NoError(t, err)
	defer closeFn()
	assert.True(t, opts.Dark)
	assert.Equal(t, 20*time.Millisecond, opts.FrameInterval)
	assert.Equal(t, 250*time.Millisecond, opts.StepInterval)
	assert.Nil(t, opts.Watcher)
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestShowcaseOptions_ThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nname: live\n"), 0o644))

	a := &app{v: viper.New()}
	a.v.Set("theme.file", path)
	opts, closeFn, err := a.showcaseOptions()
	require.NoError(t, err)
	defer closeFn()

	require.NotNil(t, opts.Watcher)
	assert.Equal(t, "live", opts.Theme.Name)
}

func TestShowcaseOptions_NegativeTick(t *testing.T) {
	a := &app{v: viper.New()}
	a.v.Set("showcase.tick", "-1s")
	_, _, err := a.showcaseOptions()
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}
