// Package build exports the portfolio as static files for hosting under the
// configured base path.
package build

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/soorajms0707/soorajms/internal/assets"
	"github.com/soorajms0707/soorajms/internal/config"
	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/page"
)

// Result lists what a build wrote.
type Result struct {
	OutputDir string
	Files     int
}

// Run renders index.html and copies static and public files into
// cfg.OutputDir, replacing whatever was there.
func Run(cfg config.Config, p *content.Portfolio, now time.Time, logger *slog.Logger) (Result, error) {
	cfg.Normalize()
	out := cfg.OutputDir
	res := Result{OutputDir: out}
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	var html bytes.Buffer
	if err := page.Render(&html, p, page.OptionsFrom(cfg, now)); err != nil {
		return res, fmt.Errorf("render page: %w", err)
	}
	if err := page.VerifyAnchors(bytes.NewReader(html.Bytes())); err != nil {
		return res, fmt.Errorf("rendered page failed anchor check: %w", err)
	}

	if err := os.RemoveAll(out); err != nil {
		return res, fmt.Errorf("error cleaning output directory %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return res, fmt.Errorf("error creating output directory %s: %w", out, err)
	}

	if err := os.WriteFile(filepath.Join(out, "index.html"), html.Bytes(), 0o644); err != nil {
		return res, fmt.Errorf("error writing index.html: %w", err)
	}
	res.Files++

	n, err := copyFS(assets.Static(), filepath.Join(out, "static"))
	if err != nil {
		return res, fmt.Errorf("error copying static assets: %w", err)
	}
	res.Files += n

	if _, err := os.Stat(cfg.PublicDir); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("public directory not found, skipping", "dir", cfg.PublicDir)
	} else {
		n, err := copyFS(os.DirFS(cfg.PublicDir), out)
		if err != nil {
			return res, fmt.Errorf("error copying public directory %s: %w", cfg.PublicDir, err)
		}
		res.Files += n
		for _, name := range []string{cfg.ProfileImage, cfg.Resume} {
			if _, err := os.Stat(filepath.Join(cfg.PublicDir, name)); err != nil {
				logger.Warn("referenced asset missing", "file", name)
			}
		}
	}

	logger.Info("site built", "dir", out, "files", res.Files, "basePath", cfg.BasePath)
	return res, nil
}

// copyFS copies every regular file in src into dst and returns the count.
func copyFS(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, name, dst string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
