package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-config/config"
)

type entryView struct {
	Name string `json:"name"`
	File string `json:"file"`
	Path string `json:"path"`
}

type keysView struct {
	File string   `json:"file"`
	Path string   `json:"path"`
	Keys []string `json:"keys"`
}

type valueView struct {
	File  string `json:"file"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type errorView struct {
	Error string `json:"error"`
}

// NewHandler returns the inspector routes for registry, wrapped in panic
// recovery and access logging.
func NewHandler(registry *config.Registry) http.Handler {
	h := &handler{registry: registry}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /entries", h.entries)
	mux.HandleFunc("GET /entries/{file}/keys", h.keys)
	mux.HandleFunc("GET /entries/{file}/value", h.value)

	return accessLog(recovery(mux))
}

type handler struct {
	registry *config.Registry
}

func (h *handler) entries(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.registry.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, entryView{Name: entry.Name(), File: entry.FileName(), Path: entry.Path()})
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *handler) keys(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")

	keys, ok := entry.Keys(path)
	if !ok {
		writeError(w, http.StatusNotFound, "no mapping at path")

		return
	}

	writeJSON(w, http.StatusOK, keysView{File: entry.FileName(), Path: path, Keys: keys})
}

func (h *handler) value(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}

	path := r.URL.Query().Get("path")

	var (
		value any
		found bool
	)

	if path == "" {
		value, found = topLevel(entry), true
	} else {
		value, found = entry.Value(path)
	}

	if !found {
		writeError(w, http.StatusNotFound, "path is not set")

		return
	}

	writeJSON(w, http.StatusOK, valueView{File: entry.FileName(), Path: path, Value: value})
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (*config.Entry, bool) {
	entry, found, err := h.registry.Get(r.PathValue("file"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())

		return nil, false
	}

	if !found {
		writeError(w, http.StatusNotFound, "unknown file")

		return nil, false
	}

	return entry, true
}

func topLevel(entry *config.Entry) map[string]any {
	keys, _ := entry.Keys("")
	out := make(map[string]any, len(keys))

	for _, key := range keys {
		if value, ok := entry.Value(key); ok {
			out[key] = value
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorView{Error: message})
}
