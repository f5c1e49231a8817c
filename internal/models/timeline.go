package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is a role at a company. A current role never has an end date.
type Experience struct {
	Base
	UserID        uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Company       string     `json:"company" gorm:"not null"`
	Position      string     `json:"position" gorm:"not null"`
	StartDate     time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate       *time.Time `json:"endDate"`
	Description   string     `json:"description" gorm:"type:text"`
	IsCurrentRole bool       `json:"isCurrentRole" gorm:"not null;default:false;check:chk_experiences_current_role,NOT is_current_role OR end_date IS NULL"`
}

func (e *Experience) BeforeSave(tx *gorm.DB) error {
	if e.IsCurrentRole {
		e.EndDate = nil
	}
	return checkDateRange(e.StartDate, e.EndDate)
}

// Education mirrors Experience for schooling.
type Education struct {
	Base
	UserID       uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Institution  string     `json:"institution" gorm:"not null"`
	Degree       string     `json:"degree" gorm:"not null"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate      *time.Time `json:"endDate"`
	Description  string     `json:"description" gorm:"type:text"`
	IsOngoing    bool       `json:"isOngoing" gorm:"not null;default:false;check:chk_education_ongoing,NOT is_ongoing OR end_date IS NULL"`
}

func (Education) TableName() string { return "education" }

func (e *Education) BeforeSave(tx *gorm.DB) error {
	if e.IsOngoing {
		e.EndDate = nil
	}
	return checkDateRange(e.StartDate, e.EndDate)
}

func checkDateRange(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return ErrMissingStartDate
	}
	if end != nil && end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}
