package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/utils"
)

type socialInput struct {
	ID       string  `json:"id"`
	SocialID string  `json:"socialId"`
	UserID   string  `json:"userId"`
	Platform *string `json:"platform"`
	Label    *string `json:"label"`
	URL      *string `json:"url"`
}

func (in *socialInput) recordRef() string    { return firstNonEmpty(in.ID, in.SocialID) }
func (in *socialInput) claimedOwner() string { return in.UserID }

func (in *socialInput) validateCreate() error {
	return required(map[string]*string{"url": in.URL})
}

func (in *socialInput) applyTo(s *models.Social) error {
	setString(&s.Platform, in.Platform)
	setString(&s.Label, in.Label)
	if in.URL != nil {
		s.URL = utils.NormalizeURL(*in.URL)
	}
	return nil
}

var socials = resource[models.Social, socialInput, *socialInput]{
	label:    "Social",
	idParam:  "socialId",
	order:    "created_at ASC",
	setOwner: func(s *models.Social, id uuid.UUID) { s.UserID = id },
}

// ListSocials godoc
// @Summary List the caller's social profiles
// @Tags Socials
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/portfolio/socials [get]
func ListSocials(w http.ResponseWriter, r *http.Request) { socials.list(w, r) }

// CreateSocial godoc
// @Summary Add a social profile
// @Tags Socials
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/portfolio/socials [post]
func CreateSocial(w http.ResponseWriter, r *http.Request) { socials.create(w, r) }

// UpdateSocial godoc
// @Summary Update one of the caller's social profiles
// @Tags Socials
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/socials [patch]
func UpdateSocial(w http.ResponseWriter, r *http.Request) { socials.update(w, r) }

// DeleteSocial godoc
// @Summary Delete one of the caller's social profiles
// @Tags Socials
// @Produce json
// @Param id query string true "Social id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/socials [delete]
func DeleteSocial(w http.ResponseWriter, r *http.Request) { socials.delete(w, r) }
