package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/utils"
)

type projectInput struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"projectId"`
	UserID       string     `json:"userId"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Technologies *listInput `json:"technologies"`
	Link         *string    `json:"link"`
	GithubLink   *string    `json:"githubLink"`
	Image        *string    `json:"image"`
}

func (in *projectInput) recordRef() string    { return firstNonEmpty(in.ID, in.ProjectID) }
func (in *projectInput) claimedOwner() string { return in.UserID }

func (in *projectInput) validateCreate() error {
	return required(map[string]*string{"title": in.Title})
}

func (in *projectInput) applyTo(p *models.Project) error {
	setString(&p.Title, in.Title)
	setString(&p.Description, in.Description)
	setString(&p.Image, in.Image)
	if in.Technologies != nil {
		p.Technologies = models.StringList(*in.Technologies)
	}
	if in.Link != nil {
		p.Link = utils.NormalizeURL(*in.Link)
	}
	if in.GithubLink != nil {
		p.GithubLink = utils.NormalizeURL(*in.GithubLink)
	}
	return nil
}

var projects = resource[models.Project, projectInput, *projectInput]{
	label:    "Project",
	idParam:  "projectId",
	order:    "created_at ASC",
	setOwner: func(p *models.Project, id uuid.UUID) { p.UserID = id },
}

// ListProjects godoc
// @Summary List the caller's projects
// @Tags Projects
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/portfolio/projects [get]
func ListProjects(w http.ResponseWriter, r *http.Request) { projects.list(w, r) }

// CreateProject godoc
// @Summary Add a project
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/portfolio/projects [post]
func CreateProject(w http.ResponseWriter, r *http.Request) { projects.create(w, r) }

// UpdateProject godoc
// @Summary Update one of the caller's projects
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/projects [patch]
func UpdateProject(w http.ResponseWriter, r *http.Request) { projects.update(w, r) }

// DeleteProject godoc
// @Summary Delete one of the caller's projects
// @Tags Projects
// @Produce json
// @Param id query string true "Project id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/projects [delete]
func DeleteProject(w http.ResponseWriter, r *http.Request) { projects.delete(w, r) }
