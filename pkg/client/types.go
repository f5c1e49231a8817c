package client

import "time"

// Entity is anything a Collection can key by id.
type Entity interface {
	EntityID() string
}

type User struct {
	ID        string    `json:"id" yaml:"id"`
	Username  string    `json:"username" yaml:"username"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type Profile struct {
	ID                string   `json:"id,omitempty" yaml:"id,omitempty"`
	Tagline           string   `json:"tagline" yaml:"tagline"`
	Bio               string   `json:"bio" yaml:"bio"`
	Hobbies           []string `json:"hobbies" yaml:"hobbies"`
	Languages         []string `json:"languages" yaml:"languages"`
	Picture           string   `json:"picture" yaml:"picture"`
	PhoneNumber       string   `json:"phoneNumber" yaml:"phoneNumber"`
	Address           string   `json:"address" yaml:"address"`
	LevelOfExperience string   `json:"levelOfExperience" yaml:"levelOfExperience"`
	YearsOfExperience int      `json:"yearsOfExperience" yaml:"yearsOfExperience"`
}

// ProfilePatch carries the profile fields to change. Nil fields are not sent.
type ProfilePatch struct {
	Tagline           *string  `json:"tagline,omitempty"`
	Bio               *string  `json:"bio,omitempty"`
	Hobbies           []string `json:"hobbies,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	PhoneNumber       *string  `json:"phoneNumber,omitempty"`
	Address           *string  `json:"address,omitempty"`
	LevelOfExperience *string  `json:"levelOfExperience,omitempty"`
	YearsOfExperience *int     `json:"yearsOfExperience,omitempty"`
	PictureKey        *string  `json:"pictureKey,omitempty"`
}

type Experience struct {
	ID            string     `json:"id,omitempty" yaml:"id"`
	Company       string     `json:"company" yaml:"company"`
	Position      string     `json:"position" yaml:"position"`
	StartDate     time.Time  `json:"startDate" yaml:"startDate"`
	EndDate       *time.Time `json:"endDate" yaml:"endDate"`
	Description   string     `json:"description" yaml:"description,omitempty"`
	IsCurrentRole bool       `json:"isCurrentRole" yaml:"isCurrentRole"`
}

func (e Experience) EntityID() string { return e.ID }

type Education struct {
	ID           string     `json:"id,omitempty" yaml:"id"`
	Institution  string     `json:"institution" yaml:"institution"`
	Degree       string     `json:"degree" yaml:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy" yaml:"fieldOfStudy,omitempty"`
	StartDate    time.Time  `json:"startDate" yaml:"startDate"`
	EndDate      *time.Time `json:"endDate" yaml:"endDate"`
	Description  string     `json:"description" yaml:"description,omitempty"`
	IsOngoing    bool       `json:"isOngoing" yaml:"isOngoing"`
}

func (e Education) EntityID() string { return e.ID }

type Project struct {
	ID           string   `json:"id,omitempty" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description,omitempty"`
	Technologies []string `json:"technologies" yaml:"technologies,omitempty"`
	Link         string   `json:"link" yaml:"link,omitempty"`
	GithubLink   string   `json:"githubLink" yaml:"githubLink,omitempty"`
	Image        string   `json:"image" yaml:"image,omitempty"`
}

func (p Project) EntityID() string { return p.ID }

type Link struct {
	ID    string `json:"id,omitempty" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

func (l Link) EntityID() string { return l.ID }

type Social struct {
	ID       string `json:"id,omitempty" yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	Label    string `json:"label" yaml:"label,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

func (s Social) EntityID() string { return s.ID }

type Skill struct {
	ID    string `json:"id,omitempty" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
}

func (s Skill) EntityID() string { return s.ID }

type Portfolio struct {
	ID          string       `json:"id" yaml:"id"`
	Username    string       `json:"username" yaml:"username"`
	Name        string       `json:"name" yaml:"name"`
	Email       string       `json:"email" yaml:"email"`
	Profile     Profile      `json:"profile" yaml:"profile"`
	Socials     []Social     `json:"socials" yaml:"socials"`
	Links       []Link       `json:"links" yaml:"links"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Education   []Education  `json:"education" yaml:"education"`
	Projects    []Project    `json:"projects" yaml:"projects"`
	Skills      []Skill      `json:"skills" yaml:"skills"`
}

type UserCard struct {
	Username string  `json:"username" yaml:"username"`
	Name     string  `json:"name" yaml:"name"`
	Tagline  string  `json:"tagline" yaml:"tagline"`
	Picture  string  `json:"picture" yaml:"picture,omitempty"`
	Skills   []Skill `json:"skills" yaml:"skills"`
}

type CompletenessField struct {
	Field  string `json:"field" yaml:"field"`
	Filled bool   `json:"filled" yaml:"filled"`
}

type Completeness struct {
	Fields  []CompletenessField `json:"fields" yaml:"fields"`
	Filled  int                 `json:"filled" yaml:"filled"`
	Total   int                 `json:"total" yaml:"total"`
	Percent int                 `json:"percent" yaml:"percent"`
}
