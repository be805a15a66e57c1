package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"tracslack/internal/domain/ports"
)

const maxBodyBytes = 1 << 20

// Server receives tracker events over HTTP and hands them to the listeners.
// Responses never reflect the notification outcome.
type Server struct {
	addr     string
	maxConns int
	logger   ports.Logger
	srv      *http.Server
}

// ServerConfig controls the listening socket.
type ServerConfig struct {
	Addr           string
	MaxConnections int
}

// NewServer constructs a Server routing events to the given listeners.
func NewServer(
	cfg ServerConfig,
	tickets ports.TicketListener,
	wiki ports.WikiListener,
	repos ports.RepositoryListener,
	logger ports.Logger,
) *Server {
	s := &Server{
		addr:     cfg.Addr,
		maxConns: cfg.MaxConnections,
		logger:   logger,
	}
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(tickets, wiki, repos),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) routes(tickets ports.TicketListener, wiki ports.WikiListener, repos ports.RepositoryListener) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/ticket/created", handle(s, func(ctx context.Context, r ticketRequest) {
		tickets.TicketCreated(ctx, r.model())
	}))
	mux.HandleFunc("POST /v1/ticket/changed", handle(s, func(ctx context.Context, r ticketChangeRequest) {
		tickets.TicketChanged(ctx, r.model())
	}))
	mux.HandleFunc("POST /v1/ticket/deleted", handle(s, func(ctx context.Context, r ticketRequest) {
		tickets.TicketDeleted(ctx, r.model())
	}))

	mux.HandleFunc("POST /v1/wiki/added", handle(s, func(ctx context.Context, r wikiPageRequest) {
		wiki.WikiPageAdded(ctx, r.model())
	}))
	mux.HandleFunc("POST /v1/wiki/changed", handle(s, func(ctx context.Context, r wikiChangeRequest) {
		wiki.WikiPageChanged(ctx, r.model())
	}))
	mux.HandleFunc("POST /v1/wiki/deleted", handle(s, func(ctx context.Context, r wikiPageRequest) {
		wiki.WikiPageDeleted(ctx, r.model())
	}))
	mux.HandleFunc("POST /v1/wiki/version-deleted", handle(s, func(ctx context.Context, r wikiPageRequest) {
		wiki.WikiPageVersionDeleted(ctx, r.model())
	}))

	mux.HandleFunc("POST /v1/repository/changeset/added", handle(s, func(ctx context.Context, r changesetEventRequest) {
		repos.ChangesetAdded(ctx, r.repository(), r.Changeset.model())
	}))
	mux.HandleFunc("POST /v1/repository/changeset/modified", handle(s, func(ctx context.Context, r changesetEventRequest) {
		repos.ChangesetModified(ctx, r.repository(), r.Changeset.model(), r.old())
	}))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// handle decodes a JSON body into T and passes it to fn.
func handle[T any](s *Server, fn func(ctx context.Context, req T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			s.logger.Warn(r.Context(), "rejected event", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("decode body: %v", err))
			return
		}

		fn(r.Context(), req)
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// ListenAndServe accepts connections until Shutdown is called. At most
// MaxConnections connections are served at once.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	if s.maxConns > 0 {
		ln = netutil.LimitListener(ln, s.maxConns)
	}

	s.logger.Info(context.Background(), "event receiver listening", "addr", ln.Addr().String(), "max_connections", s.maxConns)
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight events.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
