package models

import "time"

// Comment is a user remark on exactly one catalog item. A comment may reply
// to another comment on the same item via ParentID.
type Comment struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	TargetType TargetType `json:"target_type" gorm:"size:20;index:idx_comment_target;not null"`
	TargetID   uint       `json:"target_id" gorm:"index:idx_comment_target;not null"`
	ParentID   *uint      `json:"parent_id,omitempty" gorm:"index"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Author     *User      `json:"-" gorm:"foreignKey:UserID"`
}

// Target returns the catalog item this comment belongs to.
func (c *Comment) Target() Target {
	return Target{Type: c.TargetType, ID: c.TargetID}
}

// CommentResponse is the API shape of a comment with its author attached.
type CommentResponse struct {
	Comment
	Author *UserCompact `json:"author,omitempty"`
}

func (c *Comment) ToResponse() CommentResponse {
	resp := CommentResponse{Comment: *c}
	if c.Author != nil {
		compact := c.Author.ToCompact()
		resp.Author = &compact
	}
	return resp
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
