package repositories

import (
	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjectByID(id uint) (*models.Project, error)
	ListPublished(filter models.CatalogFilter) ([]models.Project, int64, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id uint) error
	SlugExists(slug string) (bool, error)
}

// PostgresProjectRepository implements ProjectRepository for the relational store
type PostgresProjectRepository struct {
	db *gorm.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(db *gorm.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// CreateProject creates a new project
func (r *PostgresProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProjectByID retrieves a project by ID with its category attached
func (r *PostgresProjectRepository) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Category").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListPublished retrieves a page of published projects, newest first.
func (r *PostgresProjectRepository) ListPublished(filter models.CatalogFilter) ([]models.Project, int64, error) {
	filter.Normalize()

	query := r.db.Model(&models.Project{}).Where("is_published = ?", true)
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

	var projects []models.Project
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.PerPage).
		Find(&projects).Error
	return projects, total, err
}

// UpdateProject updates an existing project
func (r *PostgresProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProject deletes a project together with its comments and likes.
// The dependents go first so a failure never leaves orphaned engagement rows.
func (r *PostgresProjectRepository) DeleteProject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		target := models.ProjectTarget(id)
		if err := tx.Where("target_type = ? AND target_id = ?", target.Type, target.ID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", target.Type, target.ID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SlugExists reports whether a slug is already taken
func (r *PostgresProjectRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

