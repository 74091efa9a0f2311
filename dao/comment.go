package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// ListByPost 오래된 댓글 먼저
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("comment_id ASC").
		Find(&comments).Error
	return comments, err
}

// ExistsInPost 댓글이 있고 그 게시물에 속할 때만 true
func (d *CommentDAO) ExistsInPost(ctx context.Context, postID, commentID uint64) (bool, error) {
	return d.IsExist(ctx, "comment_id = ? AND post_id = ?", commentID, postID)
}

// CountByPosts 게시물별 댓글 수. 댓글이 없는 게시물은 0
func (d *CommentDAO) CountByPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint64
		Total  int64
	}
	err := d.Model(ctx).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", uniqueIDs(postIDs)).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}
