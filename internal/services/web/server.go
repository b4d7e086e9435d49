package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/message"

	"github.com/vestplan/vestplan/internal/platform/branding"
	apperrors "github.com/vestplan/vestplan/internal/platform/errors"
	"github.com/vestplan/vestplan/internal/platform/timeouts"
	webi18n "github.com/vestplan/vestplan/internal/services/web/i18n"
	"github.com/vestplan/vestplan/internal/services/web/platform/httpx"
	"github.com/vestplan/vestplan/internal/services/web/platform/observability"
	"github.com/vestplan/vestplan/internal/services/web/routepath"
	"github.com/vestplan/vestplan/internal/services/web/static"
	"github.com/vestplan/vestplan/internal/split"
)

// tracerScope names the instrumentation scope for server spans.
const tracerScope = "github.com/vestplan/vestplan/internal/services/web"

// Config defines the inputs for the calculator web server.
type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	Policy         split.Policy
	AppName        string
}

// Server hosts the calculator HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handlers struct {
	calc    *split.Calculator
	appName string
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// publicMessage resolves a safe, localized message for client responses.
// Typed errors surface their message; anything else maps to the generic
// status text so internals never leak.
func publicMessage(loc *message.Printer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" && loc != nil {
		if msg := strings.TrimSpace(loc.Sprintf(key)); msg != "" && msg != key {
			return msg
		}
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return http.StatusText(status)
}

// NewHandler assembles the calculator routes behind shared middleware.
func NewHandler(config Config) (http.Handler, error) {
	policy := config.Policy
	if policy == (split.Policy{}) {
		policy = split.DefaultPolicy()
	}
	calc, err := split.New(policy)
	if err != nil {
		return nil, fmt.Errorf("build calculator: %w", err)
	}

	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handlers{calc: calc, appName: appName}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	cors := httpx.CORS(config.AllowedOrigins)
	mux.Handle(routepath.APICalculate, httpx.Chain(
		http.HandlerFunc(h.handleAPICalculate),
		cors,
		httpx.RequireMethod(http.MethodPost),
	))
	mux.Handle(routepath.APIHealth, httpx.Chain(
		http.HandlerFunc(h.handleAPIHealth),
		cors,
		httpx.RequireMethod(http.MethodGet),
	))

	mux.Handle(routepath.Calculate, httpx.Chain(
		http.HandlerFunc(h.handleCalculateForm),
		httpx.RequireMethod(http.MethodPost),
	))

	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleHome(w, r)
	})

	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return httpx.Chain(
		mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(tracerScope),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer builds a configured calculator web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("calculator listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
