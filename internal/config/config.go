package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutputOverlapsPublic is returned when the build output and the public
// directory are the same or nested, since a build empties outputDir and then
// copies publicDir into it.
var ErrOutputOverlapsPublic = errors.New("outputDir overlaps publicDir")

// Config is decoded by viper from config.yaml, PORTFOLIO_* environment
// variables and command flags.
type Config struct {
	BasePath     string `mapstructure:"basePath"`
	OutputDir    string `mapstructure:"outputDir"`
	Port         int    `mapstructure:"port"`
	ContentFile  string `mapstructure:"contentFile"`
	PublicDir    string `mapstructure:"publicDir"`
	ProfileImage string `mapstructure:"profileImage"`
	Resume       string `mapstructure:"resume"`
	LogLevel     string `mapstructure:"logLevel"`
}

// Defaults mirror the values registered with viper in cmd/root.go.
func Defaults() Config {
	return Config{
		BasePath:     "/soorajms/",
		OutputDir:    "dist",
		Port:         8080,
		PublicDir:    "public",
		ProfileImage: "profile.jpg",
		Resume:       "resume.pdf",
		LogLevel:     "info",
	}
}

// Normalize cleans the base path into "/", or "/prefix/" form.
func (c *Config) Normalize() {
	c.BasePath = NormalizeBasePath(c.BasePath)
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("outputDir must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return c.checkOutputDir()
}

// checkOutputDir rejects an outputDir that equals, contains or lies inside
// publicDir.
func (c Config) checkOutputDir() error {
	if c.PublicDir == "" {
		return nil
	}
	out, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve outputDir: %w", err)
	}
	pub, err := filepath.Abs(c.PublicDir)
	if err != nil {
		return fmt.Errorf("resolve publicDir: %w", err)
	}
	if within(out, pub) || within(pub, out) {
		return fmt.Errorf("%w: %s and %s", ErrOutputOverlapsPublic, c.OutputDir, c.PublicDir)
	}
	return nil
}

// within reports whether target is dir or below it. Both must be absolute.
func within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
