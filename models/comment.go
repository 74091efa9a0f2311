package models

import "time"

type Comment struct {
	CommentID   uint64    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	PostID      uint64    `gorm:"column:post_id;not null;index:idx_comments_post" json:"post_id"`
	StudentID   string    `gorm:"column:student_id;type:varchar(20);not null" json:"student_id"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsAnonymous bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "Comments"
}
