package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/utils"
)

type linkInput struct {
	ID     string  `json:"id"`
	LinkID string  `json:"linkId"`
	UserID string  `json:"userId"`
	Label  *string `json:"label"`
	Text   *string `json:"text"`
	URL    *string `json:"url"`
}

func (in *linkInput) recordRef() string    { return firstNonEmpty(in.ID, in.LinkID) }
func (in *linkInput) claimedOwner() string { return in.UserID }

// label accepts the older "text" key as well.
func (in *linkInput) label() *string {
	if in.Label != nil {
		return in.Label
	}
	return in.Text
}

func (in *linkInput) validateCreate() error {
	return required(map[string]*string{"label": in.label(), "url": in.URL})
}

func (in *linkInput) applyTo(l *models.Link) error {
	setString(&l.Label, in.label())
	if in.URL != nil {
		l.URL = utils.NormalizeURL(*in.URL)
	}
	return nil
}

var links = resource[models.Link, linkInput, *linkInput]{
	label:    "Link",
	idParam:  "linkId",
	order:    "created_at ASC",
	setOwner: func(l *models.Link, id uuid.UUID) { l.UserID = id },
}

// ListLinks godoc
// @Summary List the caller's links
// @Tags Links
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/portfolio/links [get]
func ListLinks(w http.ResponseWriter, r *http.Request) { links.list(w, r) }

// CreateLink godoc
// @Summary Add a link
// @Tags Links
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/portfolio/links [post]
func CreateLink(w http.ResponseWriter, r *http.Request) { links.create(w, r) }

// UpdateLink godoc
// @Summary Update one of the caller's links
// @Tags Links
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/links [patch]
func UpdateLink(w http.ResponseWriter, r *http.Request) { links.update(w, r) }

// DeleteLink godoc
// @Summary Delete one of the caller's links
// @Tags Links
// @Produce json
// @Param id query string true "Link id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/links [delete]
func DeleteLink(w http.ResponseWriter, r *http.Request) { links.delete(w, r) }
