package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/folio/docs"
	"github.com/rohits-web03/folio/internal/api/handlers"
	"github.com/rohits-web03/folio/internal/api/middleware"
	"github.com/rohits-web03/folio/internal/config"
)

// crud is the handler set of one owned portfolio collection.
type crud struct {
	list, create, update, remove http.HandlerFunc
}

func SetupRouter(logger *slog.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(h)
	}

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("POST /api/auth/create", handlers.CreateUser)
	mainMux.HandleFunc("POST /api/auth/login", handlers.LoginUser)
	mainMux.HandleFunc("POST /api/auth/logout", handlers.Logout)
	mainMux.HandleFunc("GET /api/auth/google/login", handlers.HandleGoogleLogin)
	mainMux.HandleFunc("GET /api/auth/google/callback", handlers.HandleGoogleCallback)

	mainMux.HandleFunc("GET /api/portfolio/users", handlers.ListUsers)
	mainMux.HandleFunc("GET /api/portfolio/{username}", handlers.GetPortfolio)
	mainMux.HandleFunc("GET /api/portfolio/{username}/resume", handlers.GetResume)

	// ---------- PROTECTED ROUTES ----------
	// Literal segments win over {username}, so these are registered one by one
	// instead of behind a prefix mux.
	mainMux.Handle("GET /api/auth/session", protected(handlers.GetSession))

	collections := map[string]crud{
		"experience": {handlers.ListExperiences, handlers.CreateExperience, handlers.UpdateExperience, handlers.DeleteExperience},
		"education":  {handlers.ListEducation, handlers.CreateEducation, handlers.UpdateEducation, handlers.DeleteEducation},
		"links":      {handlers.ListLinks, handlers.CreateLink, handlers.UpdateLink, handlers.DeleteLink},
		"socials":    {handlers.ListSocials, handlers.CreateSocial, handlers.UpdateSocial, handlers.DeleteSocial},
		"projects":   {handlers.ListProjects, handlers.CreateProject, handlers.UpdateProject, handlers.DeleteProject},
		"skill":      {handlers.ListSkills, handlers.CreateSkill, handlers.UpdateSkill, handlers.DeleteSkill},
	}
	for name, h := range collections {
		path := "/api/portfolio/" + name
		mainMux.Handle("GET "+path, protected(h.list))
		mainMux.Handle("POST "+path, protected(h.create))
		mainMux.Handle("PATCH "+path, protected(h.update))
		mainMux.Handle("DELETE "+path, protected(h.remove))
	}

	mainMux.Handle("GET /api/portfolio/profile", protected(handlers.GetProfile))
	mainMux.Handle("PATCH /api/portfolio/profile", protected(handlers.UpdateProfile))
	mainMux.Handle("GET /api/portfolio/profile/completeness", protected(handlers.GetProfileCompleteness))
	mainMux.Handle("POST /api/portfolio/profile/picture/presign", protected(handlers.PresignProfilePicture))

	logger.Info("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Recover(handler)
	handler = middleware.Logger(logger)(handler)
	return handler
}
