package models

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is the public composite for one user. It has no credential field.
type Portfolio struct {
	ID          uuid.UUID    `json:"id"`
	Username    string       `json:"username"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Profile     Profile      `json:"profile"`
	Socials     []Social     `json:"socials"`
	Links       []Link       `json:"links"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Projects    []Project    `json:"projects"`
	Skills      []Skill      `json:"skills"`
}

// NewPortfolio copies the public fields of u and defaults every missing collection to empty.
func NewPortfolio(u *User) Portfolio {
	p := Portfolio{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Socials:     orEmpty(u.Socials),
		Links:       orEmpty(u.Links),
		Experiences: orEmpty(u.Experiences),
		Education:   orEmpty(u.Education),
		Projects:    orEmpty(u.Projects),
		Skills:      orEmpty(u.Skills),
	}
	if u.Profile != nil {
		p.Profile = *u.Profile
	} else {
		p.Profile = EmptyProfile(u.ID)
	}
	return p
}

// UserCard is one entry of the public registered-users listing.
type UserCard struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Tagline  string  `json:"tagline"`
	Picture  string  `json:"picture"`
	Skills   []Skill `json:"skills"`
}

func NewUserCard(u *User) UserCard {
	c := UserCard{
		Username: u.Username,
		Name:     u.Name,
		Skills:   orEmpty(u.Skills),
	}
	if u.Profile != nil {
		c.Tagline = u.Profile.Tagline
		c.Picture = u.Profile.Picture
	}
	return c
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
