// Package api exposes the style table over HTTP for the rendering layer.
package api

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"styleboard/internal/palette"
	"styleboard/internal/store"
	"styleboard/internal/style"
)

const maxPresetBodyBytes = 16 * 1024

type handler struct {
	table *store.Store
}

// Routes builds the HTTP surface over the style table.
func Routes(table *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	h := &handler{table: table}

	r.Get("/api/styles", h.listStyles)
	r.Get("/api/styles/watch", h.watchStyles)
	r.Post("/api/styles/reset", h.resetStyles)
	r.Get("/api/styles/{name}", h.getStyle)
	r.Get("/api/styles/{name}/resolved", h.getResolvedStyle)
	r.Put("/api/styles/{name}", h.putStyle)
	r.Delete("/api/styles/{name}", h.deleteStyle)

	return r
}

func (h *handler) listStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.List())
}

func (h *handler) getStyle(w http.ResponseWriter, r *http.Request) {
	preset, err := h.table.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeMappedErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (h *handler) getResolvedStyle(w http.ResponseWriter, r *http.Request) {
	preset, err := h.table.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeMappedErr(w, err)
		return
	}

	scheme, err := palette.ResolvePreset(preset)
	if err != nil {
		writeMappedErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scheme)
}

func (h *handler) putStyle(w http.ResponseWriter, r *http.Request) {
	var preset style.Preset
	body := http.MaxBytesReader(w, r.Body, maxPresetBodyBytes)
	if err := json.NewDecoder(body).Decode(&preset); err != nil {
		writeErr(w, http.StatusBadRequest, "BAD_JSON", "request body must be a JSON preset")
		return
	}
	preset.Name = chi.URLParam(r, "name")

	if err := h.table.Put(preset); err != nil {
		if errors.Is(err, style.ErrPresetNotFound) {
			writeMappedErr(w, err)
			return
		}
		writeErr(w, http.StatusBadRequest, "INVALID_PRESET", err.Error())
		return
	}

	stored, err := h.table.Get(preset.Name)
	if err != nil {
		writeMappedErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *handler) deleteStyle(w http.ResponseWriter, r *http.Request) {
	if err := h.table.Delete(chi.URLParam(r, "name")); err != nil {
		writeMappedErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) resetStyles(w http.ResponseWriter, r *http.Request) {
	if err := h.table.Reset(); err != nil {
		writeErr(w, http.StatusInternalServerError, "RESET_FAILED", "could not restore seeded presets")
		return
	}
	writeJSON(w, http.StatusOK, h.table.List())
}

func writeMappedErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, style.ErrPresetNotFound):
		writeErr(w, http.StatusNotFound, "PRESET_NOT_FOUND", "no style preset has that name")
	case errors.Is(err, palette.ErrUnknownRole):
		writeErr(w, http.StatusUnprocessableEntity, "UNKNOWN_COLOR_ROLE", err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeErr(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		observer := &statusObserver{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(observer, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", observer.status,
			"duration_ms", time.Since(started).Milliseconds(),
			"remote", r.RemoteAddr,
		)
	})
}

type statusObserver struct {
	http.ResponseWriter
	status int
}

func (o *statusObserver) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}

func (o *statusObserver) Flush() {
	if flusher, ok := o.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack keeps the websocket upgrade working behind the logging wrapper.
func (o *statusObserver) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := o.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
