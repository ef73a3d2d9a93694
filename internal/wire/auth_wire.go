package wire

import (
	"venue-reservation/internal/adaptor"
	"venue-reservation/internal/data/repository"
	"venue-reservation/pkg/middleware"
	"venue-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/login - Operator login with username/email + password
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/users - Provision an operator account (admin)
		r.Post("/", authHandler.CreateUser)
	})
}
