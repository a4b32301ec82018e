package repositories

import (
	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// aboutRowID pins the profile to one well-known row.
const aboutRowID = 1

// AboutRepository accesses the single-row profile entity.
type AboutRepository interface {
	GetAbout() (*models.About, error)
	UpsertAbout(about *models.About) error
}

type postgresAboutRepository struct {
	db *gorm.DB
}

func NewPostgresAboutRepository(db *gorm.DB) AboutRepository {
	return &postgresAboutRepository{db: db}
}

func (r *postgresAboutRepository) GetAbout() (*models.About, error) {
	var about models.About
	if err := r.db.First(&about, aboutRowID).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *postgresAboutRepository) UpsertAbout(about *models.About) error {
	about.ID = aboutRowID
	return r.db.Save(about).Error
}
