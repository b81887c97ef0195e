package server

import (
	"log"
	"net/http"
	"time"

	"github.com/alfagnish/users-api/internal/config"
	"github.com/alfagnish/users-api/internal/handlers"
	"github.com/alfagnish/users-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// NewRouter creates the chi router with middleware and the users handler
// wired together. Unknown paths and unknown methods share the same 404
// envelope: the dispatch table has exactly three rows and everything else is
// an endpoint miss.
func NewRouter(st *store.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(serverToken)

	usersH := handlers.NewUsersHandler(st)
	usersH.Routes(r)

	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	return r
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Endpoint not found"}` + "\n"))
}

// serverToken stamps the product token and the default content type on
// every response before the handler runs. Handlers may only ever produce
// JSON, so the content type is set once here rather than per branch.
func serverToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", config.ServerToken)
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request with a generated request id, method,
// path, status code, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := uuid.New().String()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %s rid=%s",
			r.Method,
			r.URL.Path,
			status,
			time.Since(start).Round(time.Millisecond),
			rid,
		)
	})
}
