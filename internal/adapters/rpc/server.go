// Package rpc exposes the dayboard services as tRPC-compatible procedures
// over HTTP.
//
// Queries are served on GET /trpc/{name}?input=<json> and mutations on
// POST /trpc/{name} with a JSON body; queries also accept POST. Several
// procedures may be called at once with /trpc/a,b?batch=1, in which case the
// input is an object keyed by call index and the response is an array.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/example/dayboard/internal/ctxutil"
	"github.com/example/dayboard/internal/telemetry"
)

const (
	instrumentationName = "github.com/example/dayboard/internal/adapters/rpc"
	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr          string
	DefaultUserID string   // identity used when X-User-ID is absent
	CORSOrigins   []string // "*" allows any origin
	MaxBodyBytes  int64
	Logger        zerolog.Logger
}

// Server serves the procedure registry over HTTP.
type Server struct {
	services   *Services
	opts       Options
	log        zerolog.Logger
	handler    http.Handler
	tracer     trace.Tracer
	requests   metric.Int64Counter
	failures   metric.Int64Counter
	duration   metric.Float64Histogram
	mu         sync.RWMutex
	httpServer *http.Server
	listener   net.Listener
}

// NewServer builds the router and instruments. Instruments come from the
// global meter provider, so telemetry.Init must run first to export them.
func NewServer(services *Services, opts Options) (*Server, error) {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.DefaultUserID == "" {
		return nil, errors.New("rpc: default user id must not be empty")
	}

	s := &Server{
		services: services,
		opts:     opts,
		log:      opts.Logger.With().Str("component", "rpc").Logger(),
		tracer:   telemetry.Tracer(instrumentationName),
	}

	meter := telemetry.Meter(instrumentationName)
	var err error
	if s.requests, err = meter.Int64Counter("dayboard.rpc.requests",
		metric.WithDescription("Procedure calls handled")); err != nil {
		return nil, fmt.Errorf("rpc: requests counter: %w", err)
	}
	if s.failures, err = meter.Int64Counter("dayboard.rpc.errors",
		metric.WithDescription("Procedure calls that returned an error")); err != nil {
		return nil, fmt.Errorf("rpc: errors counter: %w", err)
	}
	if s.duration, err = meter.Float64Histogram("dayboard.rpc.duration",
		metric.WithDescription("Procedure call latency"), metric.WithUnit("ms")); err != nil {
		return nil, fmt.Errorf("rpc: duration histogram: %w", err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	router.HandleFunc("/trpc/{procedure}", s.handleTRPC).Methods(http.MethodGet, http.MethodPost)
	router.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)
	router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	s.handler = s.withRequestID(s.withIdentity(s.withAccessLog(s.withCORS(router))))
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on Options.Addr and serves until ctx is cancelled, then
// shuts down gracefully. It returns nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.mu.Lock()
	s.listener = ln
	s.httpServer = srv
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	err = srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}

// Addr returns the bound address once Start is listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.opts.Addr
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	health, err := s.services.Health.Check(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, health)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse(newError(CodeNotFound, "no route for %s", r.URL.Path), ""))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e := newError(CodeMethodNotSupported, "%s is not supported on %s", r.Method, r.URL.Path)
	writeJSON(w, e.Code.HTTPStatus(), errorResponse(e, ""))
}

func (s *Server) handleTRPC(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["procedure"]
	batch := r.URL.Query().Get("batch") == "1"

	raw, rpcErr := s.readInput(w, r)
	if rpcErr != nil {
		writeJSON(w, rpcErr.Code.HTTPStatus(), errorResponse(rpcErr, path))
		return
	}

	if !batch {
		status, body := s.call(r.Context(), r.Method, path, raw)
		writeJSON(w, status, body)
		return
	}

	names := strings.Split(path, ",")
	var inputs map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &inputs); err != nil {
			e := newError(CodeBadRequest, "batch input must be an object keyed by call index")
			writeJSON(w, e.Code.HTTPStatus(), errorResponse(e, path))
			return
		}
	}

	bodies := make([]any, len(names))
	status := 0
	for i, name := range names {
		st, body := s.call(r.Context(), r.Method, name, inputs[strconv.Itoa(i)])
		bodies[i] = body
		switch {
		case status == 0:
			status = st
		case status != st:
			status = http.StatusMultiStatus
		}
	}
	writeJSON(w, status, bodies)
}

func (s *Server) readInput(w http.ResponseWriter, r *http.Request) (json.RawMessage, *Error) {
	if r.Method == http.MethodGet {
		if in := r.URL.Query().Get("input"); in != "" {
			return json.RawMessage(in), nil
		}
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, newError(CodePayloadTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, newError(CodeBadRequest, "failed to read request body")
	}
	return body, nil
}

// call runs one procedure and returns the HTTP status and envelope for it.
func (s *Server) call(ctx context.Context, method, name string, input json.RawMessage) (int, any) {
	start := time.Now()

	proc, ok := Lookup(name)
	if !ok {
		e := newError(CodeNotFound, "no procedure found on path %q", name)
		return e.Code.HTTPStatus(), errorResponse(e, name)
	}

	ctx, span := s.tracer.Start(ctx, "rpc."+name, trace.WithAttributes(
		attribute.String("rpc.procedure", name),
		attribute.String("rpc.kind", string(proc.Kind)),
	))
	defer span.End()

	var (
		data any
		err  error
	)
	if method == http.MethodGet && proc.Kind == KindMutation {
		err = newError(CodeMethodNotSupported, "mutation %s requires POST", name)
	} else {
		data, err = proc.handle(ctx, s.services, input)
	}

	attrs := metric.WithAttributes(attribute.String("procedure", name))
	s.requests.Add(ctx, 1, attrs)
	defer func() {
		s.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)
	}()

	if err == nil {
		return http.StatusOK, resultEnvelope{Result: resultData{Data: data}}
	}

	rpcErr, known := classify(err)
	if !known {
		s.log.Error().Err(err).
			Str("procedure", name).
			Str("request_id", ctxutil.RequestIDFromContext(ctx)).
			Str("user_id", ctxutil.UserFromContext(ctx)).
			Msg("procedure failed")
	}
	s.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("procedure", name),
		attribute.String("code", string(rpcErr.Code)),
	))
	span.RecordError(err)
	span.SetStatus(codes.Error, string(rpcErr.Code))
	return rpcErr.Code.HTTPStatus(), errorResponse(rpcErr, name)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
