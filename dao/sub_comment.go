package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
)

type SubCommentDAO struct {
	Repo[models.SubComment]
}

func NewSubCommentDAO(db *gorm.DB) *SubCommentDAO {
	return &SubCommentDAO{Repo: NewRepo[models.SubComment](db)}
}

func (d *SubCommentDAO) ListByComment(ctx context.Context, commentID uint64) ([]*models.SubComment, error) {
	var replies []*models.SubComment
	err := d.Db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Order("sub_comment_id ASC").
		Find(&replies).Error
	return replies, err
}

// ListByComments 댓글 id → 답글 목록 (오래된 순)
func (d *SubCommentDAO) ListByComments(ctx context.Context, commentIDs []uint64) (map[uint64][]*models.SubComment, error) {
	out := make(map[uint64][]*models.SubComment, len(commentIDs))
	if len(commentIDs) == 0 {
		return out, nil
	}

	var replies []*models.SubComment
	err := d.Db.WithContext(ctx).
		Where("comment_id IN ?", uniqueIDs(commentIDs)).
		Order("created_at ASC").
		Order("sub_comment_id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	for _, r := range replies {
		out[r.CommentID] = append(out[r.CommentID], r)
	}
	return out, nil
}
