package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/models"
)

type skillInput struct {
	ID      string  `json:"id"`
	SkillID string  `json:"skillId"`
	UserID  string  `json:"userId"`
	Name    *string `json:"name"`
	Level   *string `json:"level"`
}

func (in *skillInput) recordRef() string    { return firstNonEmpty(in.ID, in.SkillID) }
func (in *skillInput) claimedOwner() string { return in.UserID }

func (in *skillInput) validateCreate() error {
	return required(map[string]*string{"name": in.Name})
}

func (in *skillInput) applyTo(s *models.Skill) error {
	setString(&s.Name, in.Name)
	if in.Level != nil && strings.TrimSpace(*in.Level) != "" {
		level, err := models.ParseSkillLevel(*in.Level)
		if err != nil {
			return err
		}
		s.Level = level
	}
	if s.Level == "" {
		s.Level = models.SkillBeginner
	}
	return nil
}

// uniqueSkillName rejects a second skill with the same name, ignoring case.
func uniqueSkillName(ctx context.Context, tx *gorm.DB, s *models.Skill) error {
	var count int64
	err := tx.WithContext(ctx).Model(&models.Skill{}).
		Where("user_id = ? AND lower(name) = ? AND id <> ?", s.UserID, strings.ToLower(s.Name), s.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return conflictError{msg: skillExistsMsg}
	}
	return nil
}

var skills = resource[models.Skill, skillInput, *skillInput]{
	label:     "Skill",
	idParam:   "skillId",
	order:     "created_at ASC",
	setOwner:  func(s *models.Skill, id uuid.UUID) { s.UserID = id },
	check:     uniqueSkillName,
	duplicate: skillExistsMsg,
}

const skillExistsMsg = "Skill already exists"

// ListSkills godoc
// @Summary List the caller's skills
// @Tags Skills
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/portfolio/skill [get]
func ListSkills(w http.ResponseWriter, r *http.Request) { skills.list(w, r) }

// CreateSkill godoc
// @Summary Add a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/portfolio/skill [post]
func CreateSkill(w http.ResponseWriter, r *http.Request) { skills.create(w, r) }

// UpdateSkill godoc
// @Summary Update one of the caller's skills
// @Tags Skills
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/skill [patch]
func UpdateSkill(w http.ResponseWriter, r *http.Request) { skills.update(w, r) }

// DeleteSkill godoc
// @Summary Delete one of the caller's skills
// @Tags Skills
// @Produce json
// @Param id query string true "Skill id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/portfolio/skill [delete]
func DeleteSkill(w http.ResponseWriter, r *http.Request) { skills.delete(w, r) }
