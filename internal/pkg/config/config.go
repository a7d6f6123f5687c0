package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	geoimages "github.com/ijiayi/generate-geo-images/pkg/v1"
)

// Config holds all generator configuration.
type Config struct {
	BoundingBox  string        `mapstructure:"bounding-box"`
	OutputDir    string        `mapstructure:"output-dir"`
	StepKM       int           `mapstructure:"step-km"`
	ZoomLevel    int           `mapstructure:"zoom-level"`
	ImageSize    []int         `mapstructure:"image-size"`
	Map          bool          `mapstructure:"map"`
	FontPath     string        `mapstructure:"font-path"`
	FontSize     float64       `mapstructure:"font-size"`
	TileURL      string        `mapstructure:"tile-url"`
	TileShards   []string      `mapstructure:"tile-shards"`
	UserAgent    string        `mapstructure:"user-agent"`
	Workers      int           `mapstructure:"workers"`
	Serial       bool          `mapstructure:"serial"`
	SkipErrors   bool          `mapstructure:"skip-errors"`
	PointTimeout time.Duration `mapstructure:"point-timeout"`
	LogLevel     string        `mapstructure:"log-level"`
	LogFormat    string        `mapstructure:"log-format"`
}

// Load reads configuration from defaults, an optional config file,
// environment variables and, when given, command-line flags.
// Precedence: flags > environment > file > defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults mirror the reference CLI surface.
	v.SetDefault("bounding-box", "40.0,40.02,-74.0,-73.98")
	v.SetDefault("output-dir", "geo_images")
	v.SetDefault("step-km", 1)
	v.SetDefault("zoom-level", 12)
	v.SetDefault("image-size", []int{500, 500})
	v.SetDefault("map", false)
	v.SetDefault("font-path", "")
	v.SetDefault("font-size", 0)
	v.SetDefault("tile-url", "")
	v.SetDefault("tile-shards", []string{})
	v.SetDefault("user-agent", "geoimages/1.0 (github.com/ijiayi/generate-geo-images)")
	v.SetDefault("workers", 0)
	v.SetDefault("serial", false)
	v.SetDefault("skip-errors", true)
	v.SetDefault("point-timeout", 30*time.Second)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment (GEOIMAGES_OUTPUT_DIR, GEOIMAGES_TILE_URL, ...)
	v.SetEnvPrefix("GEOIMAGES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ParseBoundingBox parses a "latMin,latMax,lonMin,lonMax" string.
func ParseBoundingBox(s string) (geoimages.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geoimages.Bounds{}, fmt.Errorf(
			"invalid bounding box %q: expected 4 comma-separated values, got %d", s, len(parts))
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geoimages.Bounds{}, fmt.Errorf("invalid bounding box %q: %w", s, err)
		}
		vals[i] = f
	}

	return geoimages.Bounds{
		MinLat: vals[0],
		MaxLat: vals[1],
		MinLon: vals[2],
		MaxLon: vals[3],
	}, nil
}

// Options converts the configuration into generator options. Malformed
// values fail here, before any filesystem or network work; range checks
// (bounds order, step > 0) are applied by geoimages.New.
func (c *Config) Options() (geoimages.Options, error) {
	bounds, err := ParseBoundingBox(c.BoundingBox)
	if err != nil {
		return geoimages.Options{}, err
	}

	width, height := 500, 500
	switch len(c.ImageSize) {
	case 0:
	case 1:
		width, height = c.ImageSize[0], c.ImageSize[0]
	case 2:
		width, height = c.ImageSize[0], c.ImageSize[1]
	default:
		return geoimages.Options{}, fmt.Errorf(
			"invalid image size %v: expected width,height", c.ImageSize)
	}

	opts := geoimages.DefaultOptions()
	opts.Bounds = bounds
	opts.StepKM = float64(c.StepKM)
	opts.OutputDir = c.OutputDir
	opts.Map = c.Map
	opts.Zoom = c.ZoomLevel
	opts.Width = width
	opts.Height = height
	opts.FontPath = c.FontPath
	opts.FontSize = c.FontSize
	opts.TileURLPattern = c.TileURL
	opts.TileShards = c.TileShards
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}
	opts.Emit.Parallel = !c.Serial
	opts.Emit.Workers = c.Workers
	opts.Emit.SkipErrors = c.SkipErrors
	opts.Emit.PointTimeout = c.PointTimeout

	return opts, nil
}
