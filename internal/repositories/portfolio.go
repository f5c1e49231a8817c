package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/models"
)

func byStartDateDesc(tx *gorm.DB) *gorm.DB {
	return tx.Order("start_date DESC").Order("created_at DESC")
}

func byCreatedAsc(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at ASC")
}

// FindPortfolio loads a user by username with every related collection.
// Experiences and education come back newest first.
func FindPortfolio(ctx context.Context, db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).
		Preload("Profile").
		Preload("Socials", byCreatedAsc).
		Preload("Links", byCreatedAsc).
		Preload("Experiences", byStartDateDesc).
		Preload("Education", byStartDateDesc).
		Preload("Projects", byCreatedAsc).
		Preload("Skills", byCreatedAsc).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUserCards returns the newest registered users with their profile and skills.
func ListUserCards(ctx context.Context, db *gorm.DB, limit int) ([]models.UserCard, error) {
	var users []models.User
	err := db.WithContext(ctx).
		Preload("Profile").
		Preload("Skills", byCreatedAsc).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	cards := make([]models.UserCard, 0, len(users))
	for i := range users {
		cards = append(cards, models.NewUserCard(&users[i]))
	}
	return cards, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
