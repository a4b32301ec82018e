package repositories

import (
	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	ListByTarget(target models.Target) ([]models.Comment, error)
	CountByTarget(target models.Target) (int64, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
}

// PostgresCommentRepository implements CommentRepository for the relational store
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTarget retrieves the comments on one catalog item, newest first,
// with authors attached.
func (r *PostgresCommentRepository) ListByTarget(target models.Target) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("target_type = ? AND target_id = ?", target.Type, target.ID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CountByTarget counts the comments on one catalog item
func (r *PostgresCommentRepository) CountByTarget(target models.Target) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("target_type = ? AND target_id = ?", target.Type, target.ID).
		Count(&count).Error
	return count, err
}

// UpdateComment updates an existing comment
func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteComment deletes a comment and the replies threaded under it.
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, id).Error
	})
}
