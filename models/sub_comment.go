package models

import "time"

// SubComment 댓글에 달린 답글
type SubComment struct {
	SubCommentID uint64    `gorm:"column:sub_comment_id;primaryKey;autoIncrement" json:"sub_comment_id"`
	CommentID    uint64    `gorm:"column:comment_id;not null;index:idx_sub_comments_comment" json:"comment_id"`
	StudentID    string    `gorm:"column:student_id;type:varchar(20);not null" json:"student_id"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	IsAnonymous  bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubComment) TableName() string {
	return "Sub_comments"
}
