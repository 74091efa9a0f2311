package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// CreateWithImages 게시물과 첨부 이미지 행을 한 트랜잭션으로 넣는다
func (d *PostDAO) CreateWithImages(ctx context.Context, post *models.Post, images []*models.PostImage) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for _, img := range images {
			img.PostID = post.PostID
		}
		return tx.Create(images).Error
	})
}

// FindByID 없으면 gorm.ErrRecordNotFound
func (d *PostDAO) FindByID(ctx context.Context, postID uint64) (*models.Post, error) {
	return d.FindByWhere(ctx, "post_id = ?", postID)
}

func (d *PostDAO) Exists(ctx context.Context, postID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ?", postID)
}

func (d *PostDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := d.Model(ctx).Count(&total).Error
	return total, err
}

// FindPage 최신 글 먼저
func (d *PostDAO) FindPage(ctx context.Context, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("post_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
