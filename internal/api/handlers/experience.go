package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/utils"
)

type experienceInput struct {
	ID            string           `json:"id"`
	ExperienceID  string           `json:"experienceId"`
	UserID        string           `json:"userId"`
	Company       *string          `json:"company"`
	Position      *string          `json:"position"`
	StartDate     *string          `json:"startDate"`
	EndDate       Optional[string] `json:"endDate"`
	Description   *string          `json:"description"`
	IsCurrentRole *bool            `json:"isCurrentRole"`
}

func (in *experienceInput) recordRef() string    { return firstNonEmpty(in.ID, in.ExperienceID) }
func (in *experienceInput) claimedOwner() string { return in.UserID }

func (in *experienceInput) validateCreate() error {
	return required(map[string]*string{
		"company":   in.Company,
		"position":  in.Position,
		"startDate": in.StartDate,
	})
}

func (in *experienceInput) applyTo(e *models.Experience) error {
	setString(&e.Company, in.Company)
	setString(&e.Position, in.Position)
	setString(&e.Description, in.Description)
	if in.IsCurrentRole != nil {
		e.IsCurrentRole = *in.IsCurrentRole
	}
	return applyDates(&e.StartDate, &e.EndDate, in.StartDate, in.EndDate)
}

// applyDates parses the start and end dates shared by experience and education.
// An empty or null endDate clears it.
func applyDates(start *time.Time, end **time.Time, rawStart *string, rawEnd Optional[string]) error {
	if rawStart != nil {
		t, err := utils.ParseDate(*rawStart)
		if err != nil {
			return invalid("invalid startDate")
		}
		*start = t
	}
	if rawEnd.Set {
		if rawEnd.Value == nil || strings.TrimSpace(*rawEnd.Value) == "" {
			*end = nil
			return nil
		}
		t, err := utils.ParseDate(*rawEnd.Value)
		if err != nil {
			return invalid("invalid endDate")
		}
		*end = &t
	}
	return nil
}

var experiences = resource[models.Experience, experienceInput, *experienceInput]{
	label:    "Experience",
	idParam:  "experienceId",
	order:    "start_date DESC, created_at DESC",
	setOwner: func(e *models.Experience, id uuid.UUID) { e.UserID = id },
}

// ListExperiences godoc
// @Summary List the caller's work experience
// @Tags Experience
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/portfolio/experience [get]
func ListExperiences(w http.ResponseWriter, r *http.Request) { experiences.list(w, r) }

// CreateExperience godoc
// @Summary Add a work experience entry
// @Tags Experience
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 403 {object} utils.Payload
// @Router /api/portfolio/experience [post]
func CreateExperience(w http.ResponseWriter, r *http.Request) { experiences.create(w, r) }

// UpdateExperience godoc
// @Summary Update one of the caller's experience entries
// @Tags Experience
// @Accept json
// @Produce json
// @Param id query string false "Experience id, may also be sent in the body"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/experience [patch]
func UpdateExperience(w http.ResponseWriter, r *http.Request) { experiences.update(w, r) }

// DeleteExperience godoc
// @Summary Delete one of the caller's experience entries
// @Tags Experience
// @Produce json
// @Param id query string true "Experience id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/experience [delete]
func DeleteExperience(w http.ResponseWriter, r *http.Request) { experiences.delete(w, r) }
