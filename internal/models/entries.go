package models

import (
	"strings"

	"github.com/google/uuid"
)

type Project struct {
	Base
	UserID       uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Technologies StringList `json:"technologies"`
	Link         string     `json:"link"`
	GithubLink   string     `json:"githubLink"`
	Image        string     `json:"image"`
}

type Link struct {
	Base
	UserID uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Label  string    `json:"label" gorm:"not null"`
	URL    string    `json:"url" gorm:"not null"`
}

type Social struct {
	Base
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Platform string    `json:"platform"`
	Label    string    `json:"label"`
	URL      string    `json:"url" gorm:"not null"`
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "BEGINNER"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
	SkillExpert       SkillLevel = "EXPERT"
)

// ParseSkillLevel accepts any casing of the four levels.
func ParseSkillLevel(s string) (SkillLevel, error) {
	l := SkillLevel(strings.ToUpper(strings.TrimSpace(s)))
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return l, nil
	}
	return "", ErrInvalidSkillLevel
}

type Skill struct {
	Base
	UserID uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Name   string     `json:"name" gorm:"not null"`
	Level  SkillLevel `json:"level" gorm:"not null;default:BEGINNER"`
}
