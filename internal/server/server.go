package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soorajms0707/soorajms/internal/assets"
	"github.com/soorajms0707/soorajms/internal/config"
	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/page"
)

type Server struct {
	cfg    config.Config
	store  *content.Store
	logger *slog.Logger
	engine *gin.Engine
	now    func() time.Time
}

func New(cfg config.Config, store *content.Store, logger *slog.Logger) *Server {
	cfg.Normalize()
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	var r *gin.Engine
	if gin.Mode() == gin.DebugMode {
		r = gin.Default()
	} else {
		r = gin.New()
		r.Use(gin.Recovery(), requestLogger(s.logger))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	base := s.cfg.BasePath
	if base != "/" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, base)
		})
	}

	site := r.Group(base)
	site.GET("/", s.index)
	site.StaticFS("/static", http.FS(assets.Static()))
	site.StaticFile("/"+s.cfg.ProfileImage, filepath.Join(s.cfg.PublicDir, s.cfg.ProfileImage))
	site.StaticFile("/"+s.cfg.Resume, filepath.Join(s.cfg.PublicDir, s.cfg.Resume))

	return r
}

func (s *Server) index(c *gin.Context) {
	var buf bytes.Buffer
	opts := page.OptionsFrom(s.cfg, s.now())
	if err := page.Render(&buf, s.store.Portfolio(), opts); err != nil {
		s.logger.Error("render failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving portfolio", "addr", "http://localhost"+srv.Addr+s.cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
