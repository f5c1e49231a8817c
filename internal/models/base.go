package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every persisted entity.
type Base struct {
	ID        uuid.UUID `json:"id,omitzero" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt,omitzero" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the id in Go so the schema does not depend on uuid-ossp.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
