package routing

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
)

type RouteClass string

const RouteClassOps RouteClass = "ops"

// Router dispatches on the exact request target and method. Targets are not
// normalized: no trailing-slash folding, no case folding, no query stripping.
type Router struct {
	entrypoint string
	declared   map[string]map[string]RouteClass
	routes     map[string]map[string]http.Handler

	// ErrorLog receives recovered handler panics. Nil means the log package's
	// standard logger.
	ErrorLog *log.Logger
}

func NewRouter(a Allowlist, entrypoint string) (*Router, error) {
	ep, ok := a.Entrypoints[entrypoint]
	if !ok {
		return nil, errors.New("allowlist: missing entrypoint")
	}
	if len(ep.Routes) == 0 {
		return nil, errors.New("allowlist: entrypoint routes empty")
	}

	declared := make(map[string]map[string]RouteClass, len(ep.Routes))
	for _, rt := range ep.Routes {
		if rt.Path == "" || rt.RouteClass == "" || len(rt.Methods) == 0 {
			return nil, errors.New("allowlist: invalid route")
		}
		if !strings.HasPrefix(rt.Path, "/") {
			return nil, errors.New("allowlist: route path must be absolute")
		}
		if declared[rt.Path] == nil {
			declared[rt.Path] = make(map[string]RouteClass, len(rt.Methods))
		}
		for _, m := range rt.Methods {
			declared[rt.Path][strings.ToUpper(strings.TrimSpace(m))] = RouteClass(rt.RouteClass)
		}
	}

	return &Router{
		entrypoint: entrypoint,
		declared:   declared,
		routes:     make(map[string]map[string]http.Handler),
	}, nil
}

// Handle registers h for (method, path). The pair must be declared by the
// allowlist the router was built from.
func (r *Router) Handle(method string, path string, h http.Handler) error {
	if _, ok := r.declared[path][method]; !ok {
		return errors.New("routing: " + method + " " + path + " not in allowlist entrypoint " + r.entrypoint)
	}
	if r.routes[path] == nil {
		r.routes[path] = make(map[string]http.Handler)
	}

	r.routes[path][method] = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				r.logf("routing: panic serving %s %s: %v\n%s", req.Method, requestTarget(req), rec, debug.Stack())
				WriteText(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		h.ServeHTTP(w, req)
	})
	return nil
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	methods, ok := r.routes[requestTarget(req)]
	if !ok {
		WriteNotFound(w)
		return
	}
	h, ok := methods[req.Method]
	if !ok {
		w.Header().Set("Allow", allowHeader(methods))
		WriteText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	h.ServeHTTP(w, req)
}

func (r *Router) logf(format string, args ...any) {
	if r.ErrorLog != nil {
		r.ErrorLog.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// requestTarget is the target as sent on the request line, query included.
func requestTarget(req *http.Request) string {
	if req.RequestURI != "" {
		return req.RequestURI
	}
	return req.URL.RequestURI()
}

func allowHeader(methods map[string]http.Handler) string {
	out := make([]string, 0, len(methods))
	for m := range methods {
		out = append(out, m)
	}
	slices.Sort(out)
	return strings.Join(out, ", ")
}
