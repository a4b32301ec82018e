package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Project is a publishable portfolio entry. Unpublished projects are invisible
// to everyone but the admin. Comments and likes are scoped to the project and
// deleted together with it.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	Slug         string    `json:"slug" gorm:"size:220;uniqueIndex"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Content      string    `json:"-" gorm:"type:text"`
	ImageURL     string    `json:"image_url" gorm:"size:255"`
	DemoURL      string    `json:"demo_url" gorm:"size:255"`
	GithubURL    string    `json:"github_url" gorm:"size:255"`
	Technologies string    `json:"-" gorm:"type:text"` // JSON-encoded ordered list
	IsPublished  bool      `json:"is_published" gorm:"default:false;index"`
	IsFeatured   bool      `json:"is_featured" gorm:"default:false"`
	CategoryID   *uint     `json:"category_id" gorm:"index"`
	Category     *Category `json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TechnologyList decodes the stored technology sequence.
func (p *Project) TechnologyList() []string {
	if p.Technologies == "" {
		return []string{}
	}
	var techs []string
	if err := json.Unmarshal([]byte(p.Technologies), &techs); err != nil {
		return []string{}
	}
	return techs
}

// SetTechnologies normalizes and stores the technology sequence.
func (p *Project) SetTechnologies(techs []string) {
	b, _ := json.Marshal(NormalizeTechnologies(techs))
	p.Technologies = string(b)
}

// NormalizeTechnologies trims entries and drops empties, preserving order.
func NormalizeTechnologies(techs []string) []string {
	normalized := make([]string, 0, len(techs))
	for _, t := range techs {
		t = strings.TrimSpace(t)
		if t != "" {
			normalized = append(normalized, t)
		}
	}
	return normalized
}

// ProjectResponse is the API shape of a project, with live engagement counts.
type ProjectResponse struct {
	Project
	Technologies  []string `json:"technologies"`
	LikesCount    int64    `json:"likes_count"`
	CommentsCount int64    `json:"comments_count"`
	Content       string   `json:"content,omitempty"`
	ContentHTML   string   `json:"content_html,omitempty"`
}

// ToResponse builds the API shape. Long-form content is only included on
// detail reads.
func (p *Project) ToResponse(likes, comments int64, includeContent bool) ProjectResponse {
	resp := ProjectResponse{
		Project:       *p,
		Technologies:  p.TechnologyList(),
		LikesCount:    likes,
		CommentsCount: comments,
	}
	if includeContent {
		resp.Content = p.Content
	}
	return resp
}

type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Description  string   `json:"description" validate:"required"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"image_url" validate:"omitempty,max=255"`
	DemoURL      string   `json:"demo_url" validate:"omitempty,max=255"`
	GithubURL    string   `json:"github_url" validate:"omitempty,max=255"`
	Technologies []string `json:"technologies"`
	IsPublished  bool     `json:"is_published"`
	IsFeatured   bool     `json:"is_featured"`
	CategoryID   *uint    `json:"category_id"`
}

// UpdateProjectRequest carries only the fields the caller wants changed; nil
// means "leave as is".
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Content      *string   `json:"content,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty" validate:"omitempty,max=255"`
	DemoURL      *string   `json:"demo_url,omitempty" validate:"omitempty,max=255"`
	GithubURL    *string   `json:"github_url,omitempty" validate:"omitempty,max=255"`
	Technologies *[]string `json:"technologies,omitempty"`
	IsPublished  *bool     `json:"is_published,omitempty"`
	IsFeatured   *bool     `json:"is_featured,omitempty"`
	CategoryID   *uint     `json:"category_id,omitempty"`
}
