package models

import "errors"

var (
	ErrEndBeforeStart          = errors.New("end date is before start date")
	ErrMissingStartDate        = errors.New("start date is required")
	ErrInvalidSkillLevel       = errors.New("invalid skill level")
	ErrInvalidExperienceLevel  = errors.New("invalid level of experience")
	ErrNegativeYearsExperience = errors.New("years of experience cannot be negative")
)
