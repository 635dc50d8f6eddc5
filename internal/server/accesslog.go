package server

import (
	"log"
	"net/http"
	"time"

	"github.com/jacksonlee411/health-listener/pkg/requestid"
)

type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func withAccessLog(logger *log.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := requestid.FromRequest(r)
		w.Header().Set(requestid.Header, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Printf("%s %s %s %d %dB %s request_id=%s trace_id=%s",
			r.RemoteAddr, r.Method, r.URL.RequestURI(), rec.status, rec.bytes,
			time.Since(start), id, requestid.TraceIDFromTraceparent(r))
	})
}
