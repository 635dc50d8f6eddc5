package routing

import "net/http"

const NotFoundBody = "Not Found"

// WriteText writes body verbatim. It sets no Content-Type; callers that need
// one set it before calling.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func WriteNotFound(w http.ResponseWriter) {
	WriteText(w, http.StatusNotFound, NotFoundBody)
}
