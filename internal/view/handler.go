package view

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/stemmap/internal/model"
)

// Service is the view computation the HTTP handler depends on.
type Service interface {
	Compute(category, region string) model.ViewModel
	CategoryOptions() []string
	Regions() []model.Region
	DefaultRegion() string
	DatasetVersion() string
	CacheStats() (CacheStats, bool)
}

// Handler serves view models over HTTP.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the view endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/view", h.HandleView)
	r.Get("/view.geojson", h.HandleGeoJSON)
	r.Get("/categories", h.HandleCategories)
	r.Get("/regions", h.HandleRegions)
	r.Get("/cache/stats", h.HandleCacheStats)
}

// filters reads the category and region query parameters. Missing or empty
// values select everything.
func (h *Handler) filters(r *http.Request) (category, region string) {
	q := r.URL.Query()
	category = q.Get("category")
	if category == "" {
		category = AllCategories
	}
	region = q.Get("region")
	if region == "" {
		region = h.svc.DefaultRegion()
	}
	return category, region
}

// HandleView handles GET /view?category=&region=.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	category, region := h.filters(r)
	vm := h.svc.Compute(category, region)

	w.Header().Set("Content-Type", "application/json")
	if err := (JSONPresenter{W: w}).Present(r.Context(), vm); err != nil {
		zap.L().Error("view: write response failed", zap.Error(err))
	}
}

// HandleGeoJSON handles GET /view.geojson?category=&region=.
func (h *Handler) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	category, region := h.filters(r)
	data, err := EncodeGeoJSON(h.svc.Compute(category, region))
	if err != nil {
		zap.L().Error("view: geojson encoding failed",
			zap.String("category", category),
			zap.String("region", region),
			zap.Error(err),
		)
		http.Error(w, `{"error":"geojson encoding failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// HandleCategories handles GET /categories.
func (h *Handler) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	cats := h.svc.CategoryOptions()
	opts := make([]option, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, option{Value: c, Label: c})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"default": AllCategories,
		"options": opts,
	})
}

// HandleRegions handles GET /regions.
func (h *Handler) HandleRegions(w http.ResponseWriter, _ *http.Request) {
	regions := h.svc.Regions()
	opts := make([]option, 0, len(regions))
	for _, reg := range regions {
		opts = append(opts, option{Value: reg.Name, Label: reg.DisplayLabel()})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"default": h.svc.DefaultRegion(),
		"options": opts,
		"regions": regions,
	})
}

// HandleCacheStats handles GET /cache/stats.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, _ *http.Request) {
	stats, ok := h.svc.CacheStats()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"enabled": true, "stats": stats})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("view: write response failed", zap.Error(err))
	}
}
