package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "Junior"
	LevelMid    ExperienceLevel = "Mid"
	LevelSenior ExperienceLevel = "Senior"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior:
		return true
	}
	return false
}

type Profile struct {
	Base
	UserID            uuid.UUID       `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Tagline           string          `json:"tagline"`
	Bio               string          `json:"bio" gorm:"type:text"`
	Hobbies           StringList      `json:"hobbies"`
	Languages         StringList      `json:"languages"`
	Picture           string          `json:"picture"`
	PhoneNumber       string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	LevelOfExperience ExperienceLevel `json:"levelOfExperience" gorm:"default:Junior"`
	YearsOfExperience int             `json:"yearsOfExperience" gorm:"not null;default:0"`
}

func (p *Profile) BeforeSave(tx *gorm.DB) error {
	if p.LevelOfExperience == "" {
		p.LevelOfExperience = LevelJunior
	}
	if !p.LevelOfExperience.Valid() {
		return ErrInvalidExperienceLevel
	}
	if p.YearsOfExperience < 0 {
		return ErrNegativeYearsExperience
	}
	return nil
}

// EmptyProfile is what readers get for a user who never saved one.
func EmptyProfile(userID uuid.UUID) Profile {
	return Profile{
		UserID:            userID,
		Hobbies:           StringList{},
		Languages:         StringList{},
		LevelOfExperience: LevelJunior,
	}
}
