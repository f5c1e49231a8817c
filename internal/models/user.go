package models

// User owns every other record. Password holds the bcrypt hash and is never serialized.
type User struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`

	Profile     *Profile     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Socials     []Social     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Links       []Link       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Experiences []Experience `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Education   []Education  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects    []Project    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Skills      []Skill      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
