package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/alfagnish/users-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// UsersHandler serves the users resource backed by the in-memory store.
type UsersHandler struct {
	store *store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(st *store.Store) *UsersHandler {
	return &UsersHandler{store: st}
}

// Routes registers the users routes on the given chi router. The id route
// is a wildcard, not a single segment: the id is whatever follows
// "/api/users/", with no validation, an empty suffix included.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/api/users", h.ListUsers)
	r.Get("/api/users/*", h.GetUser)
	r.Post("/api/users", h.CreateUser)
}

// ListUsers returns every stored user wrapped in a {"users": [...]}
// envelope. Order follows store iteration and is unspecified.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"users": h.store.List()})
}

// GetUser returns the user stored under the path suffix, or an error
// envelope when absent. Both cases answer 200; clients probe the body for
// the error field rather than the status code.
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	u, ok := h.store.Get(id)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"error": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// CreateUser parses the body as a JSON object, assigns it the next server
// id, and stores it. Anything that is not a JSON object is a 400 carrying
// the parser's message.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var u store.User
	if err := json.Unmarshal(body, &u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if u == nil {
		writeError(w, http.StatusBadRequest, "request body is not a JSON object")
		return
	}

	u = h.store.Insert(u)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created",
		"user":    u,
	})
}
