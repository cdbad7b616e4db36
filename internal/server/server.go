// Package server serves rendered snapshots of the particle field over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivier-w/driftfield/internal/config"
	"github.com/olivier-w/driftfield/internal/particles"
	"github.com/olivier-w/driftfield/internal/svgcanvas"
)

// fieldQuery is the query string of GET /field.svg. Zero values fall back to
// the configured defaults.
type fieldQuery struct {
	Width  int     `form:"width" binding:"omitempty,min=1,max=4096"`
	Height int     `form:"height" binding:"omitempty,min=1,max=4096"`
	Count  *int    `form:"count" binding:"omitempty,min=0,max=2000"`
	Frames int     `form:"frames" binding:"omitempty,min=0,max=600"`
	Seed   *uint64 `form:"seed"`
}

type Server struct {
	cfg    config.Config
	engine *gin.Engine
}

// New builds the router. Requests are logged through gin's logger.
func New(cfg config.Config) *Server {
	s := &Server{cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.Logger(), gin.Recovery())
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/field.svg", s.field)
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) field(c *gin.Context) {
	var q fieldQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	width, height := q.Width, q.Height
	if width == 0 {
		width = s.cfg.Window.Width
	}
	if height == 0 {
		height = s.cfg.Window.Height
	}
	opts := s.cfg.Particles.FieldOptions()
	if q.Count != nil {
		opts.Count = *q.Count
	}
	seed := s.cfg.Particles.Seed
	if q.Seed != nil {
		seed = *q.Seed
	}
	canvas := svgcanvas.New()
	f, err := particles.New(canvas, config.NewRand(seed), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	f.Reset(width, height)
	for range q.Frames {
		f.Tick()
	}
	f.Render()

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// Run serves on the configured address until ctx is done, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving field snapshots on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
