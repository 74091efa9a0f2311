package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
)

type PostImageDAO struct {
	Repo[models.PostImage]
}

func NewPostImageDAO(db *gorm.DB) *PostImageDAO {
	return &PostImageDAO{Repo: NewRepo[models.PostImage](db)}
}

// ListByPosts 게시물 id → 이미지 목록 (image_id 순)
func (d *PostImageDAO) ListByPosts(ctx context.Context, postIDs []uint64) (map[uint64][]*models.PostImage, error) {
	out := make(map[uint64][]*models.PostImage, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	var images []*models.PostImage
	err := d.Db.WithContext(ctx).
		Where("post_id IN ?", uniqueIDs(postIDs)).
		Order("image_id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		out[img.PostID] = append(out[img.PostID], img)
	}
	return out, nil
}

// FindByStoredName 없으면 gorm.ErrRecordNotFound
func (d *PostImageDAO) FindByStoredName(ctx context.Context, name string) (*models.PostImage, error) {
	return d.FindByWhere(ctx, "stored_name = ?", name)
}
