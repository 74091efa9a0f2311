package models

import "time"

// PostLike 좋아요 기록
// 행이 있으면 좋아요 상태, (post_id, student_id) 당 최대 한 행
type PostLike struct {
	PostID    uint64    `gorm:"column:post_id;primaryKey;autoIncrement:false" json:"post_id"`
	StudentID string    `gorm:"column:student_id;primaryKey;type:varchar(20)" json:"student_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PostLike) TableName() string {
	return "PostLikes"
}
