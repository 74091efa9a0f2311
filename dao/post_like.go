package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// Toggle 좋아요 행과 Posts.like_count 를 같은 트랜잭션에서 바꾼다.
// 게시물 행을 먼저 잠가 같은 게시물의 토글은 하나씩 처리된다.
// 반환값은 바뀐 뒤의 상태와 트랜잭션 안에서 읽은 like_count
func (d *PostLikeDAO) Toggle(ctx context.Context, postID uint64, studentID string) (liked bool, count int64, err error) {
	err = d.Transaction(ctx, func(tx *gorm.DB) error {
		var locked uint64
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&models.Post{}).
			Select("post_id").
			Where("post_id = ?", postID).
			Scan(&locked).Error; err != nil {
			return err
		}

		// 실제로 지운 행이 있을 때만 감소
		res := tx.Where("post_id = ? AND student_id = ?", postID, studentID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			// 0 아래로 내려가지 않게
			if err := tx.Model(&models.Post{}).
				Where("post_id = ?", postID).
				Update("like_count", gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
			liked = false
		} else {
			if err := tx.Create(&models.PostLike{PostID: postID, StudentID: studentID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).
				Where("post_id = ?", postID).
				Update("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&models.Post{}).
			Select("like_count").
			Where("post_id = ?", postID).
			Scan(&count).Error
	})
	return liked, count, err
}

// CountByPost PostLikes 행 수
func (d *PostLikeDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	return d.FindCount(ctx, "post_id = ?", postID)
}
