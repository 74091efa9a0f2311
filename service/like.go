package service

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// ToggleLike 누를 때마다 좋아요 상태가 뒤집힌다
	ToggleLike(ctx context.Context, studentID string, postID uint64) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	StudentDAO *dao.StudentDAO
	PostDAO    *dao.PostDAO
	LikeDAO    *dao.PostLikeDAO
}

func (s *LikeService) ToggleLike(ctx context.Context, studentID string, postID uint64) (*types.ToggleLikeResponse, error) {
	if err := requireStudent(ctx, s.StudentDAO, studentID); err != nil {
		return nil, err
	}

	exist, err := s.PostDAO.Exists(ctx, postID)
	if err != nil {
		return nil, errorx.Internal(err)
	}
	if !exist {
		return nil, errorx.NotFound(MsgPostNotFound)
	}

	liked, count, err := s.LikeDAO.Toggle(ctx, postID, studentID)
	if err != nil {
		return nil, errorx.Internal(err)
	}

	return &types.ToggleLikeResponse{
		Result:    types.Ok(""),
		Liked:     liked,
		LikeCount: count,
	}, nil
}
