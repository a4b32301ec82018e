package models

import "time"

// Achievement is a publishable certification or award. It shares the project
// visibility and engagement rules but is ordered by the date it was achieved.
type Achievement struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Title          string     `json:"title" gorm:"size:200;not null"`
	Description    string     `json:"description" gorm:"type:text;not null"`
	Content        string     `json:"-" gorm:"type:text"`
	ImageURL       string     `json:"image_url" gorm:"size:255"`
	CertificateURL string     `json:"certificate_url" gorm:"size:255"`
	DateAchieved   *time.Time `json:"date_achieved" gorm:"index"`
	Organization   string     `json:"organization" gorm:"size:200"`
	IsPublished    bool       `json:"is_published" gorm:"default:false;index"`
	IsFeatured     bool       `json:"is_featured" gorm:"default:false"`
	CategoryID     *uint      `json:"category_id" gorm:"index"`
	Category       *Category  `json:"category,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AchievementResponse is the API shape of an achievement, with live
// engagement counts.
type AchievementResponse struct {
	Achievement
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	Content       string `json:"content,omitempty"`
	ContentHTML   string `json:"content_html,omitempty"`
}

func (a *Achievement) ToResponse(likes, comments int64, includeContent bool) AchievementResponse {
	resp := AchievementResponse{
		Achievement:   *a,
		LikesCount:    likes,
		CommentsCount: comments,
	}
	if includeContent {
		resp.Content = a.Content
	}
	return resp
}

type CreateAchievementRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"required"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url" validate:"omitempty,max=255"`
	CertificateURL string `json:"certificate_url" validate:"omitempty,max=255"`
	DateAchieved   string `json:"date_achieved" validate:"omitempty,datetime=2006-01-02"`
	Organization   string `json:"organization" validate:"omitempty,max=200"`
	IsPublished    bool   `json:"is_published"`
	IsFeatured     bool   `json:"is_featured"`
	CategoryID     *uint  `json:"category_id"`
}

type UpdateAchievementRequest struct {
	Title          *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Content        *string `json:"content,omitempty"`
	ImageURL       *string `json:"image_url,omitempty" validate:"omitempty,max=255"`
	CertificateURL *string `json:"certificate_url,omitempty" validate:"omitempty,max=255"`
	DateAchieved   *string `json:"date_achieved,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Organization   *string `json:"organization,omitempty" validate:"omitempty,max=200"`
	IsPublished    *bool   `json:"is_published,omitempty"`
	IsFeatured     *bool   `json:"is_featured,omitempty"`
	CategoryID     *uint   `json:"category_id,omitempty"`
}
