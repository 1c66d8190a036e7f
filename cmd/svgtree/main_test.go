package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgtree/svgraster"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
	<defs><rect id="r" width="4" height="4" fill="red"/></defs>
	<use href="#r" x="1" y="1"/>
	<use href="#missing"/>
</svg>`

// run executes the CLI with args, feeding stdin.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
	assert.Equal(t, svgtree.IgnoreErrorMode, cfg.Options(nil).ErrorMode)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", `
error_mode: warn
dom: goxml
log_level: debug
dump:
  format: json
raster:
  width: "64"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		ErrorMode: "warn",
		DOM:       "goxml",
		LogLevel:  "debug",
		Dump:      DumpConfig{Format: "json"},
		Raster:    RasterConfig{Width: 64},
	}, cfg)
	assert.Equal(t, svgtree.WarnErrorMode, cfg.Options(nil).ErrorMode)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, content := range []string{
		"unknown_key: 1",
		"error_mode: loud",
		"dom: html",
		"log_level: verbose",
		"dump: {format: xml}",
		"raster: {width: -2}",
		"error_mode: [",
	} {
		_, err := LoadConfig(writeFile(t, "config.yaml", content))
		assert.Error(t, err, content)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDumpYAML(t *testing.T) {
	stdout, _, err := run(t, sample, "dump", "-")
	require.NoError(t, err)

	var out outline
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	require.NotNil(t, out.Root)
	assert.Equal(t, "viewport", out.Root.Kind)
	assert.Equal(t, []float64{0, 0, 10, 10}, out.Root.Viewport.ViewBox)
	require.Len(t, out.Root.Children, 1)

	rect := out.Root.Children[0]
	assert.Equal(t, "shape", rect.Kind)
	assert.Equal(t, "rect", rect.Tag)
	assert.Equal(t, []float64{1, 0, 0, 1, 1, 1}, rect.Transform)
	assert.Equal(t, "rgba(255,0,0,255)", rect.Shape.Fill)
	assert.Equal(t, "none", rect.Shape.Stroke)
	assert.Equal(t, []float64{0, 0, 4, 4}, rect.Shape.Bounds)

	assert.Equal(t, []string{"missing"}, out.Dangling)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, svgtree.DanglingReference.String(), out.Issues[0].Kind)
}

func TestDumpFormatFlagOverridesConfig(t *testing.T) {
	config := writeFile(t, "config.yaml", "dump: {format: yaml}\n")

	stdout, _, err := run(t, sample, "--config", config, "dump", "--format", "json", "-")
	require.NoError(t, err)

	var out outline
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "viewport", out.Root.Kind)
}

func TestDumpGoxml(t *testing.T) {
	stdout, _, err := run(t, sample, "--dom", "goxml", "dump", "--format", "json", "-")
	require.NoError(t, err)

	var out outline
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Root.Children, 1)
	assert.Equal(t, "rect", out.Root.Children[0].Tag)
}

func TestWarnModeLogs(t *testing.T) {
	_, stderr, err := run(t, `<svg width="abc"><rect width="1" height="1"/></svg>`,
		"--error-mode", "warn", "dump", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "attr=width")
	assert.Contains(t, stderr, "err=")
}

func TestStrictModeFails(t *testing.T) {
	_, _, err := run(t, sample, "--error-mode", "strict", "dump", "-")
	assert.ErrorIs(t, err, svgtree.ErrDanglingReference)

	_, _, err = run(t, sample, "--error-mode", "loud", "dump", "-")
	assert.Error(t, err)
}

func TestRaster(t *testing.T) {
	in := writeFile(t, "icon.svg", sample)

	_, _, err := run(t, "", "raster", "--width", "20", in)
	require.NoError(t, err)

	f, err := os.Open(strings.TrimSuffix(in, ".svg") + ".png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	_, _, _, a := img.At(6, 6).RGBA()
	assert.NotZero(t, a)
}

func TestRasterStdout(t *testing.T) {
	stdout, _, err := run(t, sample, "raster", "-")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestRasterSize(t *testing.T) {
	for _, tt := range []struct {
		iw, ih float64
		cfg    RasterConfig
		w, h   int
	}{
		{10, 20, RasterConfig{}, 10, 20},
		{10.5, 20, RasterConfig{}, 11, 20},
		{10, 20, RasterConfig{Width: 5}, 5, 10},
		{10, 20, RasterConfig{Height: 40}, 20, 40},
		{10, 20, RasterConfig{Width: 3, Height: 3}, 3, 3},
		{0, 0, RasterConfig{Width: 3, Height: 3}, 3, 3},
	} {
		w, h, err := rasterSize(tt.iw, tt.ih, tt.cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.w, w)
		assert.Equal(t, tt.h, h)
	}

	_, _, err := rasterSize(0, 0, RasterConfig{})
	assert.ErrorIs(t, err, svgraster.ErrNoSize)
	_, _, err = rasterSize(0, 0, RasterConfig{Width: 4})
	assert.ErrorIs(t, err, svgraster.ErrNoSize)
}
