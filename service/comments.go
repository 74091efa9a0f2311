package service

import (
	"context"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"
)

const MsgCommentNotFound = "대상 댓글을 찾을 수 없습니다."

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, studentID string, postID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error)
	// CreateReply 댓글이 postID 게시물에 속하지 않으면 NotFound
	CreateReply(ctx context.Context, studentID string, postID, commentID uint64, req *types.CreateCommentRequest) (*types.CreateReplyResponse, error)
	ListReplies(ctx context.Context, postID, commentID uint64) (*types.ListRepliesResponse, error)
}

type CommentsService struct {
	StudentDAO    *dao.StudentDAO
	PostDAO       *dao.PostDAO
	CommentDAO    *dao.CommentDAO
	SubCommentDAO *dao.SubCommentDAO
}

func (s *CommentsService) CreateComment(ctx context.Context, studentID string, postID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error) {
	if err := requireStudent(ctx, s.StudentDAO, studentID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errorx.Validation("댓글 내용을 입력하세요.")
	}

	exist, err := s.PostDAO.Exists(ctx, postID)
	if err != nil {
		return nil, errorx.Internal(err)
	}
	if !exist {
		return nil, errorx.NotFound(MsgPostNotFound)
	}

	comment := &models.Comment{
		PostID:      postID,
		StudentID:   studentID,
		Content:     content,
		IsAnonymous: bool(req.IsAnonymous),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, errorx.Internal(err)
	}

	return &types.CreateCommentResponse{
		Result:    types.Ok("댓글 작성 성공"),
		CommentID: comment.CommentID,
	}, nil
}

func (s *CommentsService) CreateReply(ctx context.Context, studentID string, postID, commentID uint64, req *types.CreateCommentRequest) (*types.CreateReplyResponse, error) {
	if err := requireStudent(ctx, s.StudentDAO, studentID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errorx.Validation("대댓글 내용을 입력하세요.")
	}

	if err := s.requireComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	reply := &models.SubComment{
		CommentID:   commentID,
		StudentID:   studentID,
		Content:     content,
		IsAnonymous: bool(req.IsAnonymous),
	}
	if err := s.SubCommentDAO.Create(ctx, reply); err != nil {
		return nil, errorx.Internal(err)
	}

	return &types.CreateReplyResponse{
		Result:       types.Ok("대댓글 작성 성공"),
		SubCommentID: reply.SubCommentID,
	}, nil
}

func (s *CommentsService) ListReplies(ctx context.Context, postID, commentID uint64) (*types.ListRepliesResponse, error) {
	if err := s.requireComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	replies, err := s.SubCommentDAO.ListByComment(ctx, commentID)
	if err != nil {
		return nil, errorx.Internal(err)
	}

	ids := make([]string, 0, len(replies))
	for _, r := range replies {
		if !r.IsAnonymous {
			ids = append(ids, r.StudentID)
		}
	}
	names, err := s.StudentDAO.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, errorx.Internal(err)
	}

	return &types.ListRepliesResponse{
		Result:      types.Ok(""),
		SubComments: replyItems(replies, names),
	}, nil
}

func (s *CommentsService) requireComment(ctx context.Context, postID, commentID uint64) error {
	ok, err := s.CommentDAO.ExistsInPost(ctx, postID, commentID)
	if err != nil {
		return errorx.Internal(err)
	}
	if !ok {
		return errorx.NotFound(MsgCommentNotFound)
	}
	return nil
}
