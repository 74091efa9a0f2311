package service

import (
	"context"
	"errors"
	"math"
	"mime/multipart"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, studentID string, req *types.CreatePostRequest, files []*multipart.FileHeader) (*types.CreatePostResponse, error)
	// ListPosts size 가 MaxPageSize 보다 크면 MaxPageSize 로 줄인다
	ListPosts(ctx context.Context, page, size int) (*types.ListPostsResponse, error)
	// GetPost 게시물과 댓글, 각 댓글의 답글까지
	GetPost(ctx context.Context, postID uint64) (*types.PostDetailResponse, error)
}

type PostService struct {
	StudentDAO    *dao.StudentDAO
	PostDAO       *dao.PostDAO
	CommentDAO    *dao.CommentDAO
	SubCommentDAO *dao.SubCommentDAO
	PostImageDAO  *dao.PostImageDAO
	Images        IImageService
}

func (s *PostService) CreatePost(ctx context.Context, studentID string, req *types.CreatePostRequest, files []*multipart.FileHeader) (*types.CreatePostResponse, error) {
	if err := requireStudent(ctx, s.StudentDAO, studentID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, errorx.Validation("제목과 내용을 모두 입력하세요.")
	}

	staged, err := s.Images.Stage(ctx, files)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		StudentID:   studentID,
		Title:       title,
		Content:     content,
		IsAnonymous: bool(req.IsAnonymous),
	}
	rows := make([]*models.PostImage, 0, len(staged))
	for _, img := range staged {
		rows = append(rows, &models.PostImage{
			OriginalName: img.OriginalName,
			StoredName:   img.StoredName,
			ContentType:  img.ContentType,
			FileSize:     img.FileSize,
		})
	}

	if err := s.PostDAO.CreateWithImages(ctx, post, rows); err != nil {
		s.Images.Cleanup(ctx, staged)
		return nil, errorx.Internal(err)
	}

	return &types.CreatePostResponse{
		Result: types.Ok("게시물 작성 성공"),
		PostID: post.PostID,
		Images: s.imageItems(rows),
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context, page, size int) (*types.ListPostsResponse, error) {
	if page < 1 || size < 1 {
		return nil, errorx.Validation("페이지와 크기는 1 이상이어야 합니다.")
	}
	if size > types.MaxPageSize {
		size = types.MaxPageSize
	}
	// offset 이 int 를 넘는 페이지는 어떤 테이블보다도 뒤라 빈 페이지
	beyond := page-1 > math.MaxInt/size
	offset := 0
	if !beyond {
		offset = (page - 1) * size
	}

	var (
		total int64
		posts []*models.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.PostDAO.Count(gctx)
		return err
	})
	if !beyond {
		g.Go(func() (err error) {
			posts, err = s.PostDAO.FindPage(gctx, offset, size)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errorx.Internal(err)
	}

	postIDs := make([]uint64, 0, len(posts))
	studentIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.PostID)
		if !p.IsAnonymous {
			studentIDs = append(studentIDs, p.StudentID)
		}
	}

	var (
		counts map[uint64]int64
		images map[uint64][]*models.PostImage
		names  map[string]string
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.CommentDAO.CountByPosts(gctx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		images, err = s.PostImageDAO.ListByPosts(gctx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		names, err = s.StudentDAO.NamesByIDs(gctx, studentIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errorx.Internal(err)
	}

	items := make([]*types.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, &types.PostListItem{
			PostDetail:   *s.detail(p, images[p.PostID], names),
			CommentCount: counts[p.PostID],
		})
	}

	return &types.ListPostsResponse{
		Result: types.Ok(""),
		Page:   page,
		Size:   size,
		Total:  total,
		Items:  items,
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint64) (*types.PostDetailResponse, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.NotFound(MsgPostNotFound)
	}
	if err != nil {
		return nil, errorx.Internal(err)
	}

	var (
		images   map[uint64][]*models.PostImage
		comments []*models.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		images, err = s.PostImageDAO.ListByPosts(gctx, []uint64{postID})
		return err
	})
	g.Go(func() (err error) {
		comments, err = s.CommentDAO.ListByPost(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errorx.Internal(err)
	}

	commentIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.CommentID)
	}
	replies, err := s.SubCommentDAO.ListByComments(ctx, commentIDs)
	if err != nil {
		return nil, errorx.Internal(err)
	}

	studentIDs := []string{post.StudentID}
	for _, c := range comments {
		studentIDs = append(studentIDs, c.StudentID)
		for _, r := range replies[c.CommentID] {
			studentIDs = append(studentIDs, r.StudentID)
		}
	}
	names, err := s.StudentDAO.NamesByIDs(ctx, studentIDs)
	if err != nil {
		return nil, errorx.Internal(err)
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, commentItem(c, replies[c.CommentID], names))
	}

	return &types.PostDetailResponse{
		Result:   types.Ok(""),
		Post:     s.detail(post, images[postID], names),
		Comments: items,
	}, nil
}

func (s *PostService) detail(p *models.Post, images []*models.PostImage, names map[string]string) *types.PostDetail {
	id, name := author(p.StudentID, p.IsAnonymous, names)
	return &types.PostDetail{
		PostID:      p.PostID,
		StudentID:   id,
		StudentName: name,
		Title:       p.Title,
		Content:     p.Content,
		IsAnonymous: p.IsAnonymous,
		LikeCount:   p.LikeCount,
		CreatedAt:   formatTime(p.CreatedAt),
		Images:      s.imageItems(images),
	}
}

func (s *PostService) imageItems(rows []*models.PostImage) []*types.ImageItem {
	items := make([]*types.ImageItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, &types.ImageItem{
			ImageID:      r.ImageID,
			OriginalName: r.OriginalName,
			URL:          s.Images.URL(r.StoredName),
			ContentType:  r.ContentType,
			FileSize:     r.FileSize,
		})
	}
	return items
}

func commentItem(c *models.Comment, replies []*models.SubComment, names map[string]string) *types.CommentItem {
	id, name := author(c.StudentID, c.IsAnonymous, names)
	return &types.CommentItem{
		CommentID:   c.CommentID,
		StudentID:   id,
		StudentName: name,
		Content:     c.Content,
		IsAnonymous: c.IsAnonymous,
		CreatedAt:   formatTime(c.CreatedAt),
		Replies:     replyItems(replies, names),
	}
}

func replyItems(replies []*models.SubComment, names map[string]string) []*types.ReplyItem {
	items := make([]*types.ReplyItem, 0, len(replies))
	for _, r := range replies {
		id, name := author(r.StudentID, r.IsAnonymous, names)
		items = append(items, &types.ReplyItem{
			SubCommentID: r.SubCommentID,
			StudentID:    id,
			StudentName:  name,
			Content:      r.Content,
			IsAnonymous:  r.IsAnonymous,
			CreatedAt:    formatTime(r.CreatedAt),
		})
	}
	return items
}
