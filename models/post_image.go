package models

// PostImage 게시물 첨부 이미지. 실제 파일은 저장소에 stored_name 으로 있다
type PostImage struct {
	ImageID      uint64 `gorm:"column:image_id;primaryKey;autoIncrement" json:"image_id"`
	PostID       uint64 `gorm:"column:post_id;not null;index:idx_post_images_post" json:"post_id"`
	OriginalName string `gorm:"column:original_name;type:varchar(255);not null" json:"original_name"`
	StoredName   string `gorm:"column:stored_name;type:varchar(255);not null;uniqueIndex" json:"stored_name"`
	ContentType  string `gorm:"column:content_type;type:varchar(100)" json:"content_type"`
	FileSize     int64  `gorm:"column:file_size" json:"file_size"`
}

func (PostImage) TableName() string {
	return "PostImages"
}
