// Package config loads leasedoc settings from a YAML file and LEASEDOC_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gompdf/leasedoc/pkg/api"
)

// EnvPrefix prefixes environment overrides, e.g. LEASEDOC_PDF_PAGE_SIZE.
const EnvPrefix = "LEASEDOC"

// Config is the on-disk configuration.
type Config struct {
	Debug     bool            `mapstructure:"debug"`
	Strict    bool            `mapstructure:"strict"`
	Templates TemplatesConfig `mapstructure:"templates"`
	PDF       PDFConfig       `mapstructure:"pdf"`
}

// TemplatesConfig lists template directories, searched in order.
type TemplatesConfig struct {
	Paths []string `mapstructure:"paths"`
}

// PDFConfig controls page geometry and metadata of generated PDFs.
type PDFConfig struct {
	PageSize   string                 `mapstructure:"page_size"`
	Margins    MarginsConfig          `mapstructure:"margins"`
	FontFamily string                 `mapstructure:"font_family"`
	MaxPages   int                    `mapstructure:"max_pages"`
	Compress   bool                   `mapstructure:"compress"`
	Author     string                 `mapstructure:"author"`
	Logo       string                 `mapstructure:"logo"`
	Styles     map[string]StyleConfig `mapstructure:"styles"`
}

// MarginsConfig holds page margins in millimetres.
type MarginsConfig struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// StyleConfig overrides parts of one block role's style. Zero values keep
// the default.
type StyleConfig struct {
	Family      string  `mapstructure:"family"`
	Style       string  `mapstructure:"style"`
	Size        float64 `mapstructure:"size"`
	LineHeight  float64 `mapstructure:"line_height"`
	SpaceBefore float64 `mapstructure:"space_before"`
	SpaceAfter  float64 `mapstructure:"space_after"`
	Indent      float64 `mapstructure:"indent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PDF: PDFConfig{
			PageSize: "A4",
			Margins: MarginsConfig{
				Top:    api.DefaultMargin,
				Right:  api.DefaultMargin,
				Bottom: api.DefaultMargin,
				Left:   api.DefaultMargin,
			},
			FontFamily: "Helvetica",
			Compress:   true,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("templates.paths", []string{})
	v.SetDefault("pdf.page_size", d.PDF.PageSize)
	v.SetDefault("pdf.margins.top", d.PDF.Margins.Top)
	v.SetDefault("pdf.margins.right", d.PDF.Margins.Right)
	v.SetDefault("pdf.margins.bottom", d.PDF.Margins.Bottom)
	v.SetDefault("pdf.margins.left", d.PDF.Margins.Left)
	v.SetDefault("pdf.font_family", d.PDF.FontFamily)
	v.SetDefault("pdf.max_pages", d.PDF.MaxPages)
	v.SetDefault("pdf.compress", d.PDF.Compress)
	v.SetDefault("pdf.author", d.PDF.Author)
	v.SetDefault("pdf.logo", d.PDF.Logo)
}

// Load reads configuration from path. An empty path looks for
// leasedoc.yaml in the working directory and the user config directory,
// and a missing file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("leasedoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "leasedoc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no document could be rendered with.
func (c *Config) Validate() error {
	if _, _, ok := api.PageSizeByName(c.PDF.PageSize); !ok {
		return fmt.Errorf("config: unknown page size %q (want A4, Letter or Legal)", c.PDF.PageSize)
	}
	m := c.PDF.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New("config: margins must not be negative")
	}
	if c.PDF.MaxPages < 0 {
		return errors.New("config: max_pages must not be negative")
	}
	return nil
}

// Options maps the configuration onto generator options.
func (c *Config) Options() []api.Option {
	w, h, _ := api.PageSizeByName(c.PDF.PageSize)
	m := c.PDF.Margins
	opts := []api.Option{
		api.WithPageSize(w, h),
		api.WithMargins(m.Top, m.Right, m.Bottom, m.Left),
		api.WithFontFamily(c.PDF.FontFamily),
		api.WithMaxPages(c.PDF.MaxPages),
		api.WithCompression(c.PDF.Compress),
		api.WithAuthor(c.PDF.Author),
		api.WithLogo(c.PDF.Logo),
		api.WithStrict(c.Strict),
		api.WithDebug(c.Debug),
	}
	for _, p := range c.Templates.Paths {
		opts = append(opts, api.WithTemplatePath(p))
	}
	for role, st := range c.PDF.Styles {
		opts = append(opts, api.WithStyle(role, api.TextStyle{
			Family:      st.Family,
			Style:       st.Style,
			Size:        st.Size,
			LineHeight:  st.LineHeight,
			SpaceBefore: st.SpaceBefore,
			SpaceAfter:  st.SpaceAfter,
			Indent:      st.Indent,
		}))
	}
	return opts
}
