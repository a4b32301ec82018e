package repositories

import (
	"errors"

	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Toggle(userID uint, target models.Target) (liked bool, err error)
	CountByTarget(target models.Target) (int64, error)
	HasUserLiked(userID uint, target models.Target) (bool, error)
	CountAll() (int64, error)
}

// PostgresLikeRepository implements LikeRepository for the relational store
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Toggle removes the user's like if present, inserts one otherwise, and
// reports the resulting state. The composite unique index is the arbiter
// under concurrency: if a concurrent toggle already inserted the row, the
// duplicate-key failure is absorbed as liked=true rather than surfaced.
func (r *PostgresLikeRepository) Toggle(userID uint, target models.Target) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND target_type = ? AND target_id = ?",
			userID, target.Type, target.ID).Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		liked = true
		like := models.Like{
			UserID:     userID,
			TargetType: target.Type,
			TargetID:   target.ID,
		}
		return tx.Create(&like).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent toggle won the insert; the like exists either way.
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return liked, nil
}

// CountByTarget counts the likes on one catalog item
func (r *PostgresLikeRepository) CountByTarget(target models.Target) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", target.Type, target.ID).
		Count(&count).Error
	return count, err
}

// HasUserLiked checks if a user has liked a specific catalog item
func (r *PostgresLikeRepository) HasUserLiked(userID uint, target models.Target) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target.Type, target.ID).
		Count(&count).Error
	return count > 0, err
}

// CountAll counts every like in the store
func (r *PostgresLikeRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Count(&count).Error
	return count, err
}
