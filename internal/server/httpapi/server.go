// Package httpapi exposes the application over HTTP. It authenticates
// requests with bearer tokens, translates JSON payloads into service calls,
// and maps service errors back onto HTTP status codes.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dvelasco/recetario/internal/logging"
	"github.com/dvelasco/recetario/internal/server/auth"
	"github.com/dvelasco/recetario/internal/server/models"
	"github.com/dvelasco/recetario/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// UserService is the slice of the user service the handlers need.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// RecipeService is the slice of the recipe service the handlers need.
type RecipeService interface {
	Create(ctx context.Context, ownerID string, in services.RecipeInput) (*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	Get(ctx context.Context, id string) (*models.Recipe, error)
	Update(ctx context.Context, requesterID, id string, in services.RecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, requesterID, id string) error
	CanModify(ctx context.Context, requesterID, id string) (bool, error)
}

// CommentService is the slice of the comment service the handlers need.
type CommentService interface {
	Create(ctx context.Context, authorID, recipeID, content string) (*models.Comment, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]*models.Comment, error)
	Update(ctx context.Context, requesterID, id, content string) (*models.Comment, error)
	Delete(ctx context.Context, requesterID, id string) error
	CanModify(ctx context.Context, requesterID, id string) (bool, error)
}

type Server struct {
	address  string
	logger   logging.Logger
	codec    *auth.Codec
	users    UserService
	recipes  RecipeService
	comments CommentService
	app      *fiber.App
}

func NewServer(address string, l logging.Logger, codec *auth.Codec,
	us UserService, rs RecipeService, cs CommentService) *Server {
	s := &Server{
		address:  address,
		logger:   l.With("module", "httpapi"),
		codec:    codec,
		users:    us,
		recipes:  rs,
		comments: cs,
	}
	s.app = s.newApp()
	return s
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	api := app.Group("/api")

	ath := api.Group("/auth")
	ath.Post("/register", s.register)
	ath.Post("/login", s.login)

	rec := api.Group("/recipes")
	rec.Get("/", s.listRecipes)
	rec.Post("/", s.requireAuth, s.createRecipe)
	rec.Get("/:id", s.getRecipe)
	rec.Put("/:id", s.requireAuth, s.updateRecipe)
	rec.Delete("/:id", s.requireAuth, s.deleteRecipe)
	rec.Get("/:id/permissions", s.requireAuth, s.recipePermissions)
	rec.Get("/:id/comments", s.listComments)

	com := api.Group("/comments", s.requireAuth)
	com.Post("/", s.createComment)
	com.Put("/:id", s.updateComment)
	com.Delete("/:id", s.deleteComment)

	return app
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
