// Package server exposes the resolved menu over HTTP. GET /menu speaks the
// same wire format the remote tier consumes, so one instance can act as
// the remote source for another.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/littlelemon/internal/menu"
	"github.com/idilsaglam/littlelemon/internal/source"
)

// Loader runs one resolution pass.
type Loader func(ctx context.Context) (source.Result, error)

type Server struct {
	load Loader
	log  zerolog.Logger

	mu  sync.RWMutex
	res source.Result
}

func New(load Loader, logger *zerolog.Logger) *Server {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Server{load: load, log: l}
}

// Reload resolves the menu again and swaps it in.
func (s *Server) Reload(ctx context.Context) (source.Result, error) {
	res, err := s.load(ctx)
	if err != nil {
		return res, err
	}
	s.mu.Lock()
	s.res = res
	s.mu.Unlock()
	s.log.Info().Stringer("source", res.Source).Int("count", len(res.Items)).Msg("menu reloaded")
	return res, nil
}

func (s *Server) snapshot() source.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.res
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		res := s.snapshot()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source": res.Source, "count": len(res.Items)})
	})

	r.GET("/menu", func(c *gin.Context) {
		res := s.snapshot()
		if len(res.Items) == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu not loaded"})
			return
		}
		c.JSON(http.StatusOK, source.EncodePayload(res.Items))
	})

	r.GET("/sections", func(c *gin.Context) {
		res := s.snapshot()
		categories := menu.Categories(res.Items)
		sel := menu.Hide(menu.NewSelection(categories), c.QueryArray("hide")...)
		c.JSON(http.StatusOK, gin.H{
			"source":     res.Source,
			"categories": categories,
			"sections":   menu.View(res.Items, c.Query("q"), sel),
		})
	})

	r.POST("/reload", func(c *gin.Context) {
		res, err := s.Reload(c.Request.Context())
		if err != nil {
			s.log.Err(err).Msg("reload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"source": res.Source, "count": len(res.Items), "status": source.Summary(res)})
	})

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

// Run loads the menu, then serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	if _, err := s.Reload(ctx); err != nil {
		return err
	}
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("menu server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
