package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"loremserver/internal/config"
	handlers "loremserver/internal/http/handler"
	"loremserver/internal/http/middleware"
	"loremserver/internal/service"
)

const appName = "loremserver"

// Server owns the public benchmark listener and the optional admin listener.
type Server struct {
	cfg    *config.AppConfig
	public *fiber.App
	admin  *fiber.App
	ready  atomic.Bool
	events *eventLog
}

// New builds both Fiber apps. A nil reg disables request metrics and /metrics
// regardless of configuration. Access and lifecycle logs go to out.
func New(cfg *config.AppConfig, svc service.PageService, reg *prometheus.Registry, out io.Writer) (*Server, error) {
	loc := cfg.Location()
	s := &Server{
		cfg:    cfg,
		events: &eventLog{w: out, loc: loc},
	}

	// Routing runs on the raw path: UnescapePath would decode '+' to a space.
	// handlers.Lorem decodes the segment itself. StrictRouting keeps /abc/
	// from matching /:id.
	s.public = fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
		StrictRouting:         true,
		Prefork:               cfg.Server.Prefork,
		ReadTimeout:           seconds(cfg.Server.ReadTimeoutSec),
		WriteTimeout:          seconds(cfg.Server.WriteTimeoutSec),
		IdleTimeout:           seconds(cfg.Server.IdleTimeoutSec),
	})

	// RequestID adds/propagates X-Request-ID; the tracing span must be open
	// before the logger runs so the log line can carry trace_id.
	s.public.Use(middleware.RequestID())
	s.public.Use(otelfiber.Middleware())
	if cfg.Observability.AccessLog {
		s.public.Use(middleware.LoggerWithWriter(out, loc))
	}

	var gatherer prometheus.Gatherer
	if cfg.Observability.MetricsEnabled && reg != nil {
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		s.public.Use(prom.Handler())
		gatherer = reg
	}

	handlers.RegisterRoutes(s.public, svc)

	if cfg.Observability.AdminAddr != "" {
		s.admin = fiber.New(fiber.Config{
			AppName:               appName + "-admin",
			ErrorHandler:          handlers.ErrorHandler(),
			DisableStartupMessage: true,
		})
		s.admin.Use(middleware.RequestID())
		handlers.RegisterAdminRoutes(s.admin, &s.ready, gatherer)
	}

	return s, nil
}

// Run binds the configured addresses and serves until ctx is cancelled.
// With prefork enabled Fiber binds the public address itself in every child,
// and only the parent process serves the admin listener.
func (s *Server) Run(ctx context.Context) error {
	var pub net.Listener
	if !s.cfg.Server.Prefork {
		ln, err := net.Listen("tcp", s.cfg.Addr())
		if err != nil {
			return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
		}
		pub = ln
	}

	var adm net.Listener
	if s.admin != nil && !fiber.IsChild() {
		ln, err := net.Listen("tcp", s.cfg.Observability.AdminAddr)
		if err != nil {
			if pub != nil {
				_ = pub.Close()
			}
			return fmt.Errorf("listen admin %s: %w", s.cfg.Observability.AdminAddr, err)
		}
		adm = ln
	}

	return s.Serve(ctx, pub, adm)
}

// Serve runs the public app on pub and the admin app on adm until ctx is
// cancelled or a listener fails, then shuts both down within the configured
// budget. A nil pub makes Fiber bind the configured address itself; a nil adm
// skips the admin app.
func (s *Server) Serve(ctx context.Context, pub, adm net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	// readiness flips before any connection can be accepted
	s.ready.Store(true)

	g.Go(func() error {
		s.events.info("listener_started", map[string]any{"listener": "public", "addr": listenAddr(pub, s.cfg.Addr())})
		var err error
		if pub == nil {
			err = s.public.Listen(s.cfg.Addr())
		} else {
			err = s.public.Listener(pub)
		}
		if err != nil {
			return fmt.Errorf("public listener: %w", err)
		}
		return nil
	})

	serveAdmin := s.admin != nil && adm != nil
	if serveAdmin {
		g.Go(func() error {
			s.events.info("listener_started", map[string]any{"listener": "admin", "addr": adm.Addr().String()})
			if err := s.admin.Listener(adm); err != nil {
				return fmt.Errorf("admin listener: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.ready.Store(false)
		s.events.info("shutdown_started", map[string]any{"timeout": s.cfg.ShutdownTimeout().String()})

		var errs []error
		if err := s.public.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
			errs = append(errs, fmt.Errorf("public shutdown: %w", err))
		}
		if serveAdmin {
			if err := s.admin.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
				errs = append(errs, fmt.Errorf("admin shutdown: %w", err))
			}
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.events.failure("server_stopped", err, nil)
	} else {
		s.events.info("server_stopped", nil)
	}
	return err
}

func listenAddr(ln net.Listener, fallback string) string {
	if ln == nil {
		return fallback
	}
	return ln.Addr().String()
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
