package models

import "time"

// Like records that a user liked one catalog item. The composite unique index
// on (user, target) is the hard backstop for the one-like-per-user-per-item
// invariant; application checks are advisory only.
type Like struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index;uniqueIndex:idx_user_target_like;not null"`
	TargetType TargetType `json:"target_type" gorm:"size:20;uniqueIndex:idx_user_target_like;not null"`
	TargetID   uint       `json:"target_id" gorm:"uniqueIndex:idx_user_target_like;not null"`
	CreatedAt  time.Time  `json:"created_at"`
}
