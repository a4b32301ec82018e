package repositories

import (
	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// AchievementRepository defines the interface for achievement data operations
type AchievementRepository interface {
	CreateAchievement(achievement *models.Achievement) error
	GetAchievementByID(id uint) (*models.Achievement, error)
	ListPublished(filter models.CatalogFilter) ([]models.Achievement, int64, error)
	UpdateAchievement(achievement *models.Achievement) error
	DeleteAchievement(id uint) error
}

// PostgresAchievementRepository implements AchievementRepository for the relational store
type PostgresAchievementRepository struct {
	db *gorm.DB
}

// NewPostgresAchievementRepository creates a new PostgresAchievementRepository
func NewPostgresAchievementRepository(db *gorm.DB) *PostgresAchievementRepository {
	return &PostgresAchievementRepository{db: db}
}

// CreateAchievement creates a new achievement
func (r *PostgresAchievementRepository) CreateAchievement(achievement *models.Achievement) error {
	return r.db.Create(achievement).Error
}

// GetAchievementByID retrieves an achievement by ID with its category attached
func (r *PostgresAchievementRepository) GetAchievementByID(id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.Preload("Category").First(&achievement, id).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// ListPublished retrieves a page of published achievements, most recently
// achieved first. Undated rows sort last on every driver (postgres puts
// NULLs first under plain DESC), then fall back to creation time.
func (r *PostgresAchievementRepository) ListPublished(filter models.CatalogFilter) ([]models.Achievement, int64, error) {
	filter.Normalize()

	query := r.db.Model(&models.Achievement{}).Where("is_published = ?", true)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var achievements []models.Achievement
	err := query.Preload("Category").
		Order("date_achieved DESC NULLS LAST").Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.PerPage).
		Find(&achievements).Error
	return achievements, total, err
}

// UpdateAchievement updates an existing achievement
func (r *PostgresAchievementRepository) UpdateAchievement(achievement *models.Achievement) error {
	return r.db.Save(achievement).Error
}

// DeleteAchievement deletes an achievement together with its comments and likes.
func (r *PostgresAchievementRepository) DeleteAchievement(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		target := models.AchievementTarget(id)
		if err := tx.Where("target_type = ? AND target_id = ?", target.Type, target.ID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", target.Type, target.ID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Achievement{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

