package models

import "time"

// About is the single-row profile shown on the portfolio front page. The row
// id is fixed by the repository accessor; there is never more than one.
type About struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	Content      string    `json:"content" gorm:"type:text"`
	ProfileImage string    `json:"profile_image" gorm:"size:255"`
	LinkedinURL  string    `json:"linkedin_url" gorm:"size:255"`
	GithubURL    string    `json:"github_url" gorm:"size:255"`
	Email        string    `json:"email" gorm:"size:120"`
	Phone        string    `json:"phone" gorm:"size:20"`
	Location     string    `json:"location" gorm:"size:100"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateAboutRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Content      string `json:"content"`
	ProfileImage string `json:"profile_image" validate:"omitempty,max=255"`
	LinkedinURL  string `json:"linkedin_url" validate:"omitempty,max=255"`
	GithubURL    string `json:"github_url" validate:"omitempty,max=255"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Location     string `json:"location" validate:"omitempty,max=100"`
}
