package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/repositories"
	"github.com/rohits-web03/folio/internal/resume"
	"github.com/rohits-web03/folio/internal/utils"
)

const (
	defaultUsersLimit = 50
	maxUsersLimit     = 200
)

// loadPortfolio serves the composite from cache when possible and fills the cache on a miss.
func loadPortfolio(r *http.Request, username string) (*models.Portfolio, error) {
	ctx := r.Context()
	if p, ok := repositories.Cache.GetPortfolio(ctx, username); ok {
		logging.From(ctx).Debug("portfolio cache hit")
		return p, nil
	}

	version := repositories.Cache.PortfolioVersion(ctx, username)
	user, err := repositories.FindPortfolio(ctx, repositories.DB, username)
	if err != nil {
		return nil, err
	}
	p := models.NewPortfolio(user)
	repositories.Cache.SetPortfolio(ctx, p, version)
	return &p, nil
}

// GetPortfolio godoc
// @Summary Public portfolio for a username
// @Description Profile, socials, links, experiences, education, projects and skills. Experiences and education are newest first.
// @Tags Portfolio
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.Payload{data=models.Portfolio}
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/{username} [get]
func GetPortfolio(w http.ResponseWriter, r *http.Request) {
	p, err := loadPortfolio(r, r.PathValue("username"))
	if err != nil {
		writeError(w, r, err, "User not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Portfolio retrieved",
		Data:    p,
	})
}

// GetResume godoc
// @Summary Generated resume for a username
// @Tags Portfolio
// @Produce text/markdown,json
// @Param username path string true "Username"
// @Param format query string false "markdown (default) or json"
// @Success 200 {string} string
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/{username}/resume [get]
func GetResume(w http.ResponseWriter, r *http.Request) {
	p, err := loadPortfolio(r, r.PathValue("username"))
	if err != nil {
		writeError(w, r, err, "User not found")
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "markdown", "md":
	case "json":
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Resume retrieved",
			Data:    p,
		})
		return
	default:
		utils.ErrorResponse(w, http.StatusBadRequest, "format must be markdown or json")
		return
	}

	var buf bytes.Buffer
	if err := resume.Markdown(&buf, *p); err != nil {
		writeError(w, r, err, "")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+p.Username+`-resume.md"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ListUsers godoc
// @Summary Registered users
// @Description Newest first. Each card carries name, username, tagline, picture and skills.
// @Tags Portfolio
// @Produce json
// @Param limit query int false "Maximum number of users (default 50, max 200)"
// @Success 200 {object} utils.Payload{data=[]models.UserCard}
// @Router /api/portfolio/users [get]
func ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := defaultUsersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = min(n, maxUsersLimit)
	}

	// Only the default page is cached.
	cacheable := limit == defaultUsersLimit
	var version int64
	if cacheable {
		version = repositories.Cache.UserCardsVersion(r.Context())
		if cards, ok := repositories.Cache.GetUserCards(r.Context()); ok {
			utils.JSONResponse(w, http.StatusOK, utils.Payload{Success: true, Message: "Users retrieved", Data: cards})
			return
		}
	}

	cards, err := repositories.ListUserCards(r.Context(), repositories.DB, limit)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if cacheable {
		repositories.Cache.SetUserCards(r.Context(), cards, version)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Users retrieved",
		Data:    cards,
	})
}
