package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jacksonlee411/health-listener/internal/routing"
)

const entrypoint = "health"

type HandlerOptions struct {
	// Allowlist overrides the embedded route allowlist.
	Allowlist *routing.Allowlist
	// AccessLog enables one log line per request.
	AccessLog bool
	// Logger receives access log lines and recovered panics. Nil means the
	// log package's standard logger.
	Logger *log.Logger
}

func NewHandler() (http.Handler, error) {
	return NewHandlerWithOptions(HandlerOptions{})
}

func NewHandlerWithOptions(opts HandlerOptions) (http.Handler, error) {
	var a routing.Allowlist
	if opts.Allowlist != nil {
		a = *opts.Allowlist
	} else {
		def, err := routing.DefaultAllowlist()
		if err != nil {
			return nil, err
		}
		a = def
	}

	router, err := routing.NewRouter(a, entrypoint)
	if err != nil {
		return nil, err
	}
	router.ErrorLog = opts.Logger

	if err := router.Handle(http.MethodGet, "/health", http.HandlerFunc(HealthHandler)); err != nil {
		return nil, err
	}

	var h http.Handler = router
	if opts.AccessLog {
		h = withAccessLog(opts.Logger, h)
	}
	return h, nil
}

func MustNewHandler(opts HandlerOptions) http.Handler {
	h, err := NewHandlerWithOptions(opts)
	if err != nil {
		panic(errors.New("server: failed to build handler: " + err.Error()))
	}
	return h
}

// HealthHandler answers the liveness probe. It never consults other state.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	routing.WriteText(w, http.StatusOK, "OK")
}
