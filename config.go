package pagescrape

import (
	"strconv"
	"strings"
	"time"
)

// OutputFile is the name of the file written under Config.Dir.
const OutputFile = "scraped_data.json"

// Feature formats.
const (
	FeatureFormatText     = "text"
	FeatureFormatMarkdown = "markdown"
)

// Default configuration values.
const (
	DefaultTimeout         = 10 * time.Second
	DefaultDir             = "tmp"
	DefaultTitleSelector   = "head > title, title"
	DefaultFeatureSelector = "[data-feature], .feature, .features li, #features li"
	DefaultUserAgent       = "pagescrape/1.0"
	DefaultMaxBodyBytes    = 10 << 20
)

// Environment keys read by ApplyEnv.
const (
	EnvTimeout         = "PAGESCRAPE_TIMEOUT"
	EnvDir             = "PAGESCRAPE_DIR"
	EnvTitleSelector   = "PAGESCRAPE_TITLE_SELECTOR"
	EnvFeatureSelector = "PAGESCRAPE_FEATURE_SELECTOR"
	EnvFeatureFormat   = "PAGESCRAPE_FEATURE_FORMAT"
	EnvUserAgent       = "PAGESCRAPE_USER_AGENT"
	EnvMaxBodyBytes    = "PAGESCRAPE_MAX_BODY_BYTES"
)

// Config holds everything needed to build an Extractor and its Sink.
// It is passed explicitly to constructors; nothing reads process state.
type Config struct {
	// Timeout bounds the whole HTTP request including the body read.
	Timeout time.Duration

	// Dir is the working-state directory that receives OutputFile.
	Dir string

	// TitleSelector matches the title element; the first match wins.
	TitleSelector string

	// FeatureSelector matches feature markers.
	FeatureSelector string

	// FeatureFormat is FeatureFormatText or FeatureFormatMarkdown.
	FeatureFormat string

	UserAgent string

	// MaxBodyBytes caps the response body size.
	MaxBodyBytes int64
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		Dir:             DefaultDir,
		TitleSelector:   DefaultTitleSelector,
		FeatureSelector: DefaultFeatureSelector,
		FeatureFormat:   FeatureFormatText,
		UserAgent:       DefaultUserAgent,
		MaxBodyBytes:    DefaultMaxBodyBytes,
	}
}

// ApplyEnv overrides fields with the values present in env.
// Keys that are absent or blank leave the field untouched.
func (c *Config) ApplyEnv(env map[string]string) error {
	get := func(key string) (string, bool) {
		v, ok := env[key]
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Errorf(EINVALID, "invalid %s %q: %v", EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v, ok := get(EnvDir); ok {
		c.Dir = v
	}
	if v, ok := get(EnvTitleSelector); ok {
		c.TitleSelector = v
	}
	if v, ok := get(EnvFeatureSelector); ok {
		c.FeatureSelector = v
	}
	if v, ok := get(EnvFeatureFormat); ok {
		c.FeatureFormat = strings.ToLower(v)
	}
	if v, ok := get(EnvUserAgent); ok {
		c.UserAgent = v
	}
	if v, ok := get(EnvMaxBodyBytes); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Errorf(EINVALID, "invalid %s %q: %v", EnvMaxBodyBytes, v, err)
		}
		c.MaxBodyBytes = n
	}
	return nil
}

// Validate returns an error if the configuration cannot be used.
// Selector syntax is checked by the parser that compiles them.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.Dir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if strings.TrimSpace(c.TitleSelector) == "" {
		return Errorf(EINVALID, "title selector required")
	}
	if strings.TrimSpace(c.FeatureSelector) == "" {
		return Errorf(EINVALID, "feature selector required")
	}
	switch c.FeatureFormat {
	case FeatureFormatText, FeatureFormatMarkdown:
	default:
		return Errorf(EINVALID, "unknown feature format %q", c.FeatureFormat)
	}
	if c.MaxBodyBytes <= 0 {
		return Errorf(EINVALID, "max body bytes must be positive")
	}
	return nil
}
