package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/netutil"

	"github.com/confeitaria/confeitaria/publisher"
	"github.com/confeitaria/confeitaria/session"
)

// Server is the dispatch frontend: it decodes transport requests, resolves
// them against the page table, injects awareness objects, invokes the page
// entry point and translates its Result into an HTTP response.
//
// It implements the http.Handler interface, so it can also be mounted on an
// externally managed listener:
//
//	srv, _ := server.New(server.Config{}, root)
//	http.ListenAndServe(":8080", srv)
type Server struct {
	cfg      Config
	table    *publisher.Table
	sessions *session.Store

	mu       sync.Mutex
	httpSrv  *http.Server
	boundTo  string
	shutdown bool
}

// New builds the route table from the given page tree and returns a server
// ready to handle requests. The table is built once and never mutated.
func New(cfg Config, root *publisher.Node) (*Server, error) {
	if root == nil {
		return nil, errors.New("server: root node must not be nil")
	}

	cfg = cfg.withDefaults()

	return &Server{
		cfg:      cfg,
		table:    publisher.BuildTable(root),
		sessions: cfg.Sessions,
	}, nil
}

// Table returns the server's route table.
func (s *Server) Table() *publisher.Table {
	return s.table
}

// ServeHTTP dispatches one request end to end. Resolution failures map to
// 404 and 405 (RFC 9110 Sections 15.5.5 and 15.5.6); page errors and panics
// map to 500.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if v := recover(); v != nil {
			s.cfg.Logger.Error("page panicked", "url", r.URL.String(), "panic", v)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}()

	rawURL := r.URL.Path
	if r.URL.RawQuery != "" {
		rawURL += "?" + r.URL.RawQuery
	}

	req, err := s.table.Resolve(rawURL, r.Method, readBody(r))
	if err != nil {
		switch {
		case errors.Is(err, publisher.ErrMethodNotAllowed):
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		default:
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		}
		return
	}

	jar := publisher.ParseCookies(r.Header.Get("Cookie"))
	s.inject(req, jar)

	result, err := s.invoke(req)
	if err != nil {
		s.cfg.Logger.Error("page failed", "url", req.URL, "method", req.Method, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.write(w, req, result, jar)
}

// inject hands the resolved request, the cookie jar and the session to the
// page, in that order, for each awareness interface the page implements.
// A session-aware page with no session cookie gets a freshly minted
// identifier, recorded in the jar so the response sets it on the client.
func (s *Server) inject(req *publisher.Request, jar *publisher.Cookies) {
	if aware, ok := req.Page.(publisher.RequestAware); ok {
		aware.SetRequest(req)
	}
	if aware, ok := req.Page.(publisher.CookieAware); ok {
		aware.SetCookies(jar)
	}
	if aware, ok := req.Page.(publisher.SessionAware); ok {
		id, ok := jar.Get(s.cfg.SessionCookie)
		if !ok {
			id = uuid.NewString()
			jar.SetValue(s.cfg.SessionCookie, id)
		}
		aware.SetSession(s.sessions.Get(id))
	}
}

func (s *Server) invoke(req *publisher.Request) (publisher.Result, error) {
	if req.Method == http.MethodPost {
		return req.Page.(publisher.Action).Action(req.Args)
	}
	return req.Page.(publisher.Index).Index(req.Args)
}

// write translates a page Result into the response: an explicit redirect
// wins; otherwise a POST completes with 303 See Other back to the request
// URL, and a GET renders the body with 200 and Content-type text/html.
func (s *Server) write(w http.ResponseWriter, req *publisher.Request, result publisher.Result, jar *publisher.Cookies) {
	for _, ck := range jar.Pending() {
		http.SetCookie(w, ck)
	}

	switch {
	case result.IsRedirect():
		location := result.Location()
		if location == "" {
			location = req.URL
		}
		w.Header().Set("Location", location)
		w.WriteHeader(result.Status())

	case req.Method == http.MethodPost:
		w.Header().Set("Location", req.URL)
		w.WriteHeader(http.StatusSeeOther)

	default:
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, result.Body())
	}
}

// readBody returns the form-encoded POST body, degrading to "" when the
// request has no readable body.
func readBody(r *http.Request) string {
	if r.Method != http.MethodPost || r.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	return string(raw)
}

// Run binds the configured address and serves until ctx is canceled or the
// listener fails. A transiently unavailable port is retried BindRetries
// times with BindRetryDelay between attempts; exhaustion is an explicit
// error. When MaxConnections is set, the listener is capped accordingly.
//
// On cancellation the server shuts down gracefully, bounded by
// ShutdownTimeout, and waits until the port is confirmed released.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.listen(ctx)
	if err != nil {
		return err
	}

	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	httpSrv := &http.Server{Handler: s}

	s.mu.Lock()
	s.httpSrv = httpSrv
	s.boundTo = ln.Addr().String()
	s.mu.Unlock()

	s.cfg.Logger.Info("serving", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() {
		errc <- httpSrv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout))
		defer cancel()
		return s.Shutdown(shutdownCtx)

	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Addr returns the address the server is bound to, "" before Run binds.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundTo
}

// Shutdown stops accepting connections, waits for in-flight requests within
// ctx, and then waits until the port is confirmed released.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	httpSrv := s.httpSrv
	addr := s.boundTo
	done := s.shutdown
	s.shutdown = true
	s.mu.Unlock()

	if httpSrv == nil || done {
		return nil
	}

	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return WaitDown(addr, 0, 0)
}

// listen binds the configured address, retrying while the port is
// transiently unavailable.
func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	var lastErr error
	for i := 0; i < s.cfg.BindRetries; i++ {
		ln, err := net.Listen("tcp", s.cfg.Addr)
		if err == nil {
			return ln, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(s.cfg.BindRetryDelay)):
		}
	}
	return nil, fmt.Errorf("server: bind %s failed after %d attempts: %w", s.cfg.Addr, s.cfg.BindRetries, lastErr)
}
