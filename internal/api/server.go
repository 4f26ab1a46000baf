// Package api exposes the closet over a local HTTP API so other tooling on
// the machine can read and mutate the same collections the CLI uses.
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ainsleyw/drobe/internal/closet"
	"github.com/ainsleyw/drobe/internal/common"
	"github.com/ainsleyw/drobe/internal/detect"
	"github.com/ainsleyw/drobe/internal/model"
	"github.com/ainsleyw/drobe/internal/storage"
)

// Server handles HTTP requests for the closet API.
type Server struct {
	store    storage.Store
	detector detect.Detector
	addr     string
}

// NewServer creates a closet API server.
func NewServer(store storage.Store, detector detect.Detector, addr string) *Server {
	return &Server{store: store, detector: detector, addr: addr}
}

// Router assembles the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)

	r.Route("/closet", func(r chi.Router) {
		r.Get("/", s.listItems)
		r.Post("/", s.appendItems)
		r.Put("/{id}/tags", s.updateTags)
		r.Delete("/{id}", s.deleteItem)
	})

	r.Route("/outfits", func(r chi.Router) {
		r.Get("/", s.listOutfits)
		r.Post("/", s.createOutfit)
		r.Get("/{id}", s.getOutfit)
		r.Delete("/{id}", s.deleteOutfit)
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", s.listEvents)
		r.Put("/{date}", s.assignOutfit)
		r.Delete("/{date}", s.removeEvent)
	})

	r.Post("/detect", s.detectGarments)

	return r
}

// Run starts the HTTP server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("closet API listening", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	detection := "connected"
	if err := s.detector.Health(r.Context()); err != nil {
		detection = "offline"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"detection": detection,
	})
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.LoadItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) appendItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []itemPayload `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "items required", http.StatusBadRequest)
		return
	}

	items := buildItems(req.Items)
	if err := s.store.AppendItems(r.Context(), items); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

func (s *Server) updateTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := s.store.UpdateItemTags(r.Context(), chi.URLParam(r, "id"), req.Tags); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listOutfits(w http.ResponseWriter, r *http.Request) {
	outfits, err := s.store.LoadOutfits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outfits)
}

func (s *Server) createOutfit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string   `json:"name"`
		ClothingItemIDs []string `json:"clothingItemIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	outfit, err := s.store.CreateOutfit(r.Context(), req.Name, req.ClothingItemIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, outfit)
}

func (s *Server) getOutfit(w http.ResponseWriter, r *http.Request) {
	outfits, err := s.store.LoadOutfits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	for i := range outfits {
		if outfits[i].ID != id {
			continue
		}
		items, err := s.store.LoadItems(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"outfit": outfits[i],
			"items":  outfits[i].ResolveItems(items),
		})
		return
	}
	writeError(w, fmt.Errorf("%w: outfit %s", common.ErrNotFound, id))
}

func (s *Server) deleteOutfit(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteOutfit(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.LoadEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) assignOutfit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OutfitID string `json:"outfitId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	event, err := s.store.UpsertCalendarEvent(r.Context(), chi.URLParam(r, "date"), req.OutfitID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) removeEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveCalendarEvent(r.Context(), chi.URLParam(r, "date")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) detectGarments(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		http.Error(w, "image must be base64", http.StatusBadRequest)
		return
	}

	result, err := s.detector.DetectBase64(r.Context(), image)
	if err != nil {
		writeError(w, err)
		return
	}

	detections := closet.FromResult(result, "")
	writeJSON(w, http.StatusOK, map[string]any{
		"imageShape": result.ImageShape,
		"detections": detections,
	})
}

// itemPayload is the creation body for a clothing item; ids and timestamps
// are always assigned server-side.
type itemPayload struct {
	ImageURI         string   `json:"imageUri"`
	Type             string   `json:"type"`
	Tags             []string `json:"tags"`
	Confidence       float64  `json:"confidence"`
	OriginalImageURI string   `json:"originalImageUri"`
}

func buildItems(payloads []itemPayload) []model.ClothingItem {
	items := make([]model.ClothingItem, 0, len(payloads))
	for _, p := range payloads {
		item := model.NewClothingItem(p.ImageURI, p.Type, p.Tags, p.Confidence)
		item.OriginalImageURI = p.OriginalImageURI
		items = append(items, item)
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if common.IsValidationError(err) ||
		errors.Is(err, model.ErrInvalidItem) ||
		errors.Is(err, storage.ErrInvalidDate) ||
		errors.Is(err, storage.ErrEmptyString) ||
		errors.Is(err, storage.ErrEmptySlice) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, common.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, common.ErrDetectionFailed) || errors.Is(err, common.ErrDetectionUnavailable) {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	slog.Error("request failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
