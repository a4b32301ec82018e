package repositories

import (
	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// StatsRepository aggregates the public portfolio counters.
type StatsRepository interface {
	GetStats() (*models.Stats, error)
}

type postgresStatsRepository struct {
	db *gorm.DB
}

func NewPostgresStatsRepository(db *gorm.DB) StatsRepository {
	return &postgresStatsRepository{db: db}
}

func (r *postgresStatsRepository) GetStats() (*models.Stats, error) {
	var stats models.Stats

	if err := r.db.Model(&models.Project{}).Where("is_published = ?", true).
		Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Achievement{}).Where("is_published = ?", true).
		Count(&stats.TotalAchievements).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Like{}).Count(&stats.TotalLikes).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Comment{}).Count(&stats.TotalComments).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("is_active = ?", true).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
