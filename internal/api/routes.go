package api

import (
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/handlers"
	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	"github.com/Chimelu/hafak-surgicals-backend/internal/metrics"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
)

type Handlers struct {
	Equipment *handlers.EquipmentHandler
	Category  *handlers.CategoryHandler
	Auth      *handlers.AuthHandler
	Health    http.Handler
}

var managers = []models.Role{models.RoleAdmin, models.RoleSuperAdmin}

// NewRouter registers every route on a fresh mux. The returned handler
// records request metrics; logging and tracing are layered on by the caller.
func NewRouter(h Handlers, auth *middleware.AuthMiddleware) http.Handler {

	mux := http.NewServeMux()

	// storefront
	mux.HandleFunc("GET /api/equipment/public", h.Equipment.ListPublic())
	mux.HandleFunc("GET /api/equipment/public/{id}", h.Equipment.GetPublic())
	mux.HandleFunc("GET /api/equipment/featured", h.Equipment.Featured())
	mux.HandleFunc("GET /api/equipment/search", h.Equipment.Search())
	mux.HandleFunc("GET /api/equipment/categories", h.Equipment.PublicCategories())

	// admin panel
	mux.HandleFunc("GET /api/equipment", auth.Authenticate(h.Equipment.List()))
	mux.HandleFunc("GET /api/equipment/stats/overview", auth.Authenticate(h.Equipment.Stats()))
	mux.HandleFunc("GET /api/equipment/{id}", auth.Authenticate(h.Equipment.Get()))
	mux.HandleFunc("POST /api/equipment", auth.RequireRoles(h.Equipment.Create(), managers...))
	mux.HandleFunc("POST /api/equipment/test-upload", auth.RequireRoles(h.Equipment.TestUpload(), managers...))
	mux.HandleFunc("PUT /api/equipment/{id}", auth.RequireRoles(h.Equipment.Update(), managers...))
	mux.HandleFunc("DELETE /api/equipment/{id}", auth.RequireRoles(h.Equipment.Delete(), managers...))

	mux.HandleFunc("GET /api/categories", auth.Authenticate(h.Category.List()))
	mux.HandleFunc("POST /api/categories", auth.Authenticate(h.Category.Create()))
	mux.HandleFunc("GET /api/categories/stats/overview", auth.Authenticate(h.Category.Stats()))
	mux.HandleFunc("GET /api/categories/{id}", auth.Authenticate(h.Category.Get()))
	mux.HandleFunc("PUT /api/categories/{id}", auth.Authenticate(h.Category.Update()))
	mux.HandleFunc("DELETE /api/categories/{id}", auth.Authenticate(h.Category.Delete()))
	mux.HandleFunc("GET /api/categories/{id}/equipment", auth.Authenticate(h.Category.Equipment()))

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login())
	mux.HandleFunc("GET /api/auth/me", auth.Authenticate(h.Auth.Me()))

	// operations
	if h.Health != nil {
		mux.Handle("GET /api/health", h.Health)
	}
	mux.Handle("GET /metrics", metrics.Handler())

	return metrics.Middleware(mux)
}
