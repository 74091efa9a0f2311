package models

import "time"

// Post 게시물
// like_count 는 PostLikes 행 수와 항상 같아야 한다
type Post struct {
	PostID      uint64    `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	StudentID   string    `gorm:"column:student_id;type:varchar(20);not null;index:idx_posts_student" json:"student_id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsAnonymous bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	LikeCount   int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Post) TableName() string {
	return "Posts"
}
