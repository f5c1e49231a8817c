package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rohits-web03/folio/internal/models"
)

type educationInput struct {
	ID           string           `json:"id"`
	EducationID  string           `json:"educationId"`
	UserID       string           `json:"userId"`
	Institution  *string          `json:"institution"`
	Degree       *string          `json:"degree"`
	FieldOfStudy *string          `json:"fieldOfStudy"`
	StartDate    *string          `json:"startDate"`
	EndDate      Optional[string] `json:"endDate"`
	Description  *string          `json:"description"`
	IsOngoing    *bool            `json:"isOngoing"`
}

func (in *educationInput) recordRef() string    { return firstNonEmpty(in.ID, in.EducationID) }
func (in *educationInput) claimedOwner() string { return in.UserID }

func (in *educationInput) validateCreate() error {
	return required(map[string]*string{
		"institution": in.Institution,
		"degree":      in.Degree,
		"startDate":   in.StartDate,
	})
}

func (in *educationInput) applyTo(e *models.Education) error {
	setString(&e.Institution, in.Institution)
	setString(&e.Degree, in.Degree)
	setString(&e.FieldOfStudy, in.FieldOfStudy)
	setString(&e.Description, in.Description)
	if in.IsOngoing != nil {
		e.IsOngoing = *in.IsOngoing
	}
	return applyDates(&e.StartDate, &e.EndDate, in.StartDate, in.EndDate)
}

var education = resource[models.Education, educationInput, *educationInput]{
	label:    "Education",
	idParam:  "educationId",
	order:    "start_date DESC, created_at DESC",
	setOwner: func(e *models.Education, id uuid.UUID) { e.UserID = id },
}

// ListEducation godoc
// @Summary List the caller's education
// @Tags Education
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/portfolio/education [get]
func ListEducation(w http.ResponseWriter, r *http.Request) { education.list(w, r) }

// CreateEducation godoc
// @Summary Add an education entry
// @Tags Education
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/portfolio/education [post]
func CreateEducation(w http.ResponseWriter, r *http.Request) { education.create(w, r) }

// UpdateEducation godoc
// @Summary Update one of the caller's education entries
// @Tags Education
// @Accept json
// @Produce json
// @Param id query string false "Education id, may also be sent in the body"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/education [patch]
func UpdateEducation(w http.ResponseWriter, r *http.Request) { education.update(w, r) }

// DeleteEducation godoc
// @Summary Delete one of the caller's education entries
// @Tags Education
// @Produce json
// @Param id query string true "Education id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/education [delete]
func DeleteEducation(w http.ResponseWriter, r *http.Request) { education.delete(w, r) }
