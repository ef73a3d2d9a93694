package wire

import (
	"venue-reservation/internal/adaptor"
	"venue-reservation/internal/data/repository"
	"venue-reservation/pkg/middleware"
	"venue-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Room catalog management
	r.Route("/api/admin/rooms", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/rooms - Add a room (admin)
		r.Post("/", catalogHandler.CreateRoom)

		// GET /api/admin/rooms - List rooms with pagination (admin)
		r.Get("/", catalogHandler.GetRooms)

		// GET /api/admin/rooms/{id} - Room details (admin)
		r.Get("/{id}", catalogHandler.GetRoom)

		// PUT /api/admin/rooms/{id} - Update room rates and details (admin)
		r.Put("/{id}", catalogHandler.UpdateRoom)

		// DELETE /api/admin/rooms/{id} - Retire a room (admin)
		r.Delete("/{id}", catalogHandler.DeleteRoom)
	})

	// Venue area catalog management
	r.Route("/api/admin/areas", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/areas - Add a venue area (admin)
		r.Post("/", catalogHandler.CreateArea)

		// GET /api/admin/areas - List areas with pagination (admin)
		r.Get("/", catalogHandler.GetAreas)

		// GET /api/admin/areas/{id} - Area details (admin)
		r.Get("/{id}", catalogHandler.GetArea)

		// PUT /api/admin/areas/{id} - Update area rates and details (admin)
		r.Put("/{id}", catalogHandler.UpdateArea)

		// DELETE /api/admin/areas/{id} - Retire an area (admin)
		r.Delete("/{id}", catalogHandler.DeleteArea)
	})
}
