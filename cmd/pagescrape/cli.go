package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/joho/godotenv"
)

// CLI defines the command-line interface structure for Kong.
// Zero-valued flags leave the .env or default value in place.
type CLI struct {
	Timeout         time.Duration `short:"t" help:"HTTP request timeout (default 10s)"`
	Dir             string        `short:"d" help:"Working-state directory receiving scraped_data.json (default tmp)"`
	TitleSelector   string        `help:"CSS selector for the title element"`
	FeatureSelector string        `help:"CSS selector for feature markers"`
	FeatureFormat   string        `help:"Feature rendering: text or markdown (default text)"`
	EnvFile         string        `name:"env-file" help:"Read PAGESCRAPE_* settings from this .env file"`
	Verbose         bool          `short:"v" help:"Log requests to stderr"`
	URL             string        `arg:"" optional:"" help:"Absolute http(s) URL of the page to scrape"`
}

// Config resolves the effective configuration: defaults, then the .env
// file, then flags.
func (c *CLI) Config() (pagescrape.Config, error) {
	cfg := pagescrape.DefaultConfig()

	if c.EnvFile != "" {
		env, err := godotenv.Read(c.EnvFile)
		if err != nil {
			return cfg, pagescrape.Errorf(pagescrape.EINVALID, "read env file %s: %v", c.EnvFile, err)
		}
		if err := cfg.ApplyEnv(env); err != nil {
			return cfg, err
		}
	}

	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Dir != "" {
		cfg.Dir = c.Dir
	}
	if c.TitleSelector != "" {
		cfg.TitleSelector = c.TitleSelector
	}
	if c.FeatureSelector != "" {
		cfg.FeatureSelector = c.FeatureSelector
	}
	if c.FeatureFormat != "" {
		cfg.FeatureFormat = c.FeatureFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Service runs one extraction and stores the result.
type Service interface {
	Run(ctx context.Context, url string) (*pagescrape.ScrapeResult, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service Service

	// OutputPath is reported on success.
	OutputPath string
}

// ScrapeCmd handles the scrape operation.
type ScrapeCmd struct {
	URL string
}
