package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/service"
)

type Dependencies struct {
	Logger             *log.Logger
	Addr               string
	PublicDir          string
	StatusService      *service.StatusService
	AccessLogService   *service.AccessLogService
	FingerprintService *service.FingerprintService
}

type Server struct {
	httpServer         *http.Server
	grpcServer         *grpc.Server
	health             *health.Server
	logger             *log.Logger
	api                *chi.Mux
	dispatch           *dispatcher
	statusService      *service.StatusService
	accessLogService   *service.AccessLogService
	fingerprintService *service.FingerprintService
}

func NewServer(d Dependencies) (*Server, error) {
	st, err := d.StatusService.DeviceStatus(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read device status: %w", err)
	}

	s := &Server{
		logger:             d.Logger,
		statusService:      d.StatusService,
		accessLogService:   d.AccessLogService,
		fingerprintService: d.FingerprintService,
	}

	s.api = chi.NewRouter()
	s.api.Use(middleware.StripSlashes)
	s.api.Use(middleware.GetHead)
	s.api.Get("/health", s.handleHealth)
	s.api.Get("/", s.handleSummary)
	s.api.Post("/api/fingerprint", s.handleFingerprint)
	s.api.Get("/api/logs", s.handleLogs)
	s.api.Get("/api/stats", s.handleStats)
	s.api.NotFound(writeNotFound)
	s.api.MethodNotAllowed(writeNotFound)

	static := newStaticFiles(d.PublicDir)

	// API routes win over files in the public directory; anything left over
	// is a 404.
	s.dispatch = &dispatcher{matchers: []matcher{
		{name: "api", match: s.matchAPI, handler: s.api},
		{name: "static", match: static.match, handler: static},
		{name: "not_found", match: always, handler: http.HandlerFunc(writeNotFound)},
	}}

	var handler http.Handler = s.dispatch
	handler = middleware.Recoverer(handler)
	handler = corsMiddleware(handler)
	handler = loggingMiddleware(d.Logger, handler)
	handler = requestIDMiddleware(handler)

	s.health = newHealthServer(st)
	s.grpcServer = newGRPCServer(s.health)

	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isGRPC(r) {
			s.grpcServer.ServeHTTP(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           h2c.NewHandler(root, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Listen binds the configured address.  Pass the listener to Serve.
func (s *Server) Listen() (net.Listener, error) {
	addr := s.httpServer.Addr
	if addr == "" {
		addr = ":http"
	}
	return net.Listen("tcp", addr)
}

func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()
	err := s.httpServer.Shutdown(ctx)
	s.grpcServer.Stop()
	return err
}

// matchAPI reports whether one of the API routes claims r.  HEAD is matched
// as GET and a single trailing slash is ignored, mirroring the router's
// middleware.  The path is the one chi routes on: the escaped form when the
// request carries one.
func (s *Server) matchAPI(r *http.Request) bool {
	method := r.Method
	if method == http.MethodHead {
		method = http.MethodGet
	}
	p := r.URL.Path
	if r.URL.RawPath != "" {
		p = r.URL.RawPath
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return s.api.Match(chi.NewRouteContext(), method, p)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp, err := s.statusService.Health(r.Context())
	if err != nil {
		s.logger.Printf("health error: %v", err)
		writeInternalError(w, r)
		return
	}
	respond(w, r, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.statusService.Summary(r.Context())
	if err != nil {
		s.logger.Printf("summary error: %v", err)
		writeInternalError(w, r)
		return
	}
	respond(w, r, http.StatusOK, resp)
}

func (s *Server) handleFingerprint(w http.ResponseWriter, r *http.Request) {
	scan, err := readScan(r)
	if err != nil {
		// Submissions are never acted on, so a bad body changes nothing.
		s.logger.Printf("fingerprint: ignoring unreadable body: %v", err)
	}

	resp, err := s.fingerprintService.Submit(r.Context(), scan)
	if err != nil && !errors.Is(err, service.ErrDeviceOffline) {
		s.logger.Printf("fingerprint error: %v", err)
		writeInternalError(w, r)
		return
	}
	s.logger.Printf("fingerprint rejected (%v): %s", err, scan)

	respond(w, r, http.StatusServiceUnavailable, resp)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accessLogService.Logs(r.Context())
	if err != nil {
		s.logger.Printf("logs error: %v", err)
		writeInternalError(w, r)
		return
	}
	respond(w, r, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accessLogService.Stats(r.Context())
	if err != nil {
		s.logger.Printf("stats error: %v", err)
		writeInternalError(w, r)
		return
	}
	respond(w, r, http.StatusOK, resp)
}
