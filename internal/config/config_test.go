package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/leasedoc/pkg/api"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leasedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
strict: true
templates:
  paths: [./templates, ~/leasedoc]
pdf:
  page_size: Letter
  margins: {top: 25.4, bottom: 25.4}
  font_family: Times
  max_pages: 10
  logo: assets/logo.svg
  styles:
    section:
      size: 14
      space_before: 6
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"./templates", "~/leasedoc"}, cfg.Templates.Paths)
	assert.Equal(t, "Letter", cfg.PDF.PageSize)
	assert.Equal(t, 25.4, cfg.PDF.Margins.Top)
	assert.Equal(t, api.DefaultMargin, cfg.PDF.Margins.Left)
	assert.Equal(t, "Times", cfg.PDF.FontFamily)
	assert.True(t, cfg.PDF.Compress)
	assert.Equal(t, "assets/logo.svg", cfg.PDF.Logo)
	assert.Equal(t, 14.0, cfg.PDF.Styles["section"].Size)
	assert.Equal(t, 6.0, cfg.PDF.Styles["section"].SpaceBefore)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "pdf:\n  page_size: A4\n")
	t.Setenv("LEASEDOC_PDF_PAGE_SIZE", "Legal")
	t.Setenv("LEASEDOC_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Legal", cfg.PDF.PageSize)
	assert.True(t, cfg.Debug)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().PDF, cfg.PDF)
	assert.Empty(t, cfg.Templates.Paths)
	assert.False(t, cfg.Strict)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "pdf:\n  page_size: A3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown page size")

	_, err = Load(writeConfig(t, "pdf:\n  margins: {top: -1}\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "pdf: [not, a, map"))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.PDF.PageSize = "letter"
	cfg.PDF.MaxPages = 3
	cfg.Strict = true
	cfg.Templates.Paths = []string{"a", "b"}
	cfg.PDF.Styles = map[string]StyleConfig{"header": {Size: 18}}

	g := api.New(cfg.Options()...)
	opts := g.Options()
	assert.Equal(t, api.PageSizeLetterWidth, opts.PageWidth)
	assert.Equal(t, api.PageSizeLetterHeight, opts.PageHeight)
	assert.Equal(t, 3, opts.MaxPages)
	assert.True(t, opts.Strict)
	assert.True(t, opts.Compress)
	assert.Equal(t, []string{"a", "b"}, opts.TemplatePaths)
	assert.Equal(t, 18.0, opts.StyleOverrides["header"].Size)
}
