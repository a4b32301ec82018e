package models

import "time"

// NotificationType tags what caused a notification.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationLike    NotificationType = "like"
	NotificationNewUser NotificationType = "new_user"
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is an admin-facing record of engagement or identity events.
// Mark-read never deletes; only explicit admin action removes notifications.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Type        NotificationType `json:"type" gorm:"size:30;index;not null"`
	Title       string           `json:"title" gorm:"size:200;not null"`
	Message     string           `json:"message" gorm:"type:text"`
	RecipientID uint             `json:"recipient_id" gorm:"index;not null"`
	ActorID     *uint            `json:"actor_id,omitempty" gorm:"index"`
	TargetType  *TargetType      `json:"target_type,omitempty" gorm:"size:20"`
	TargetID    *uint            `json:"target_id,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}

// NotificationResponse includes actor info for display.
type NotificationResponse struct {
	Notification
	Actor *UserCompact `json:"actor,omitempty"`
}
