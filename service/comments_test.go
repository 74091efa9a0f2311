package service

import (
	"context"
	"testing"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	b.addStudent(t, "20301", "홍길동", "pw", false)
	post, err := b.posts.CreatePost(ctx, "20301", &types.CreatePostRequest{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)

	res, err := b.comments.CreateComment(ctx, "20301", post.PostID, &types.CreateCommentRequest{Content: " 안녕 "})
	require.NoError(t, err)
	assert.NotZero(t, res.CommentID)

	var stored models.Comment
	require.NoError(t, b.db.First(&stored, "comment_id = ?", res.CommentID).Error)
	assert.Equal(t, "안녕", stored.Content)

	_, err = b.comments.CreateComment(ctx, "20301", post.PostID, &types.CreateCommentRequest{Content: "  "})
	assert.True(t, errorx.Is(err, errorx.KindValidation))

	_, err = b.comments.CreateComment(ctx, "20301", 999, &types.CreateCommentRequest{Content: "x"})
	assert.True(t, errorx.Is(err, errorx.KindNotFound))

	_, err = b.comments.CreateComment(ctx, "", post.PostID, &types.CreateCommentRequest{Content: "x"})
	assert.True(t, errorx.Is(err, errorx.KindAuth))
}

func TestCreateReply_CommentMustBelongToPost(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	b.addStudent(t, "20301", "홍길동", "pw", false)

	require.NoError(t, b.db.Create(&models.Post{PostID: 5, StudentID: "20301", Title: "t", Content: "c"}).Error)
	require.NoError(t, b.db.Create(&models.Post{PostID: 7, StudentID: "20301", Title: "t", Content: "c"}).Error)
	require.NoError(t, b.db.Create(&models.Comment{CommentID: 9, PostID: 7, StudentID: "20301", Content: "x"}).Error)

	_, err := b.comments.CreateReply(ctx, "20301", 5, 9, &types.CreateCommentRequest{Content: "답글"})
	assert.True(t, errorx.Is(err, errorx.KindNotFound))
	assert.Zero(t, b.count(t, &models.SubComment{}))

	res, err := b.comments.CreateReply(ctx, "20301", 7, 9, &types.CreateCommentRequest{Content: "답글"})
	require.NoError(t, err)
	assert.NotZero(t, res.SubCommentID)

	_, err = b.comments.ListReplies(ctx, 5, 9)
	assert.True(t, errorx.Is(err, errorx.KindNotFound))
}

func TestListReplies_OrderAndMasking(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	b.addStudent(t, "20301", "홍길동", "pw", false)
	post, err := b.posts.CreatePost(ctx, "20301", &types.CreatePostRequest{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)
	comment, err := b.comments.CreateComment(ctx, "20301", post.PostID, &types.CreateCommentRequest{Content: "c"})
	require.NoError(t, err)

	for _, r := range []*types.CreateCommentRequest{
		{Content: "1"},
		{Content: "2", IsAnonymous: true},
		{Content: "3"},
	} {
		_, err := b.comments.CreateReply(ctx, "20301", post.PostID, comment.CommentID, r)
		require.NoError(t, err)
	}

	res, err := b.comments.ListReplies(ctx, post.PostID, comment.CommentID)
	require.NoError(t, err)
	require.Len(t, res.SubComments, 3)
	assert.Equal(t, "1", res.SubComments[0].Content)
	assert.Equal(t, "2", res.SubComments[1].Content)
	assert.Equal(t, "3", res.SubComments[2].Content)

	assert.Nil(t, res.SubComments[1].StudentID)
	assert.Equal(t, types.AnonymousName, *res.SubComments[1].StudentName)
	assert.Equal(t, "20301", *res.SubComments[0].StudentID)

	_, err = b.comments.CreateReply(ctx, "20301", post.PostID, comment.CommentID, &types.CreateCommentRequest{Content: ""})
	assert.True(t, errorx.Is(err, errorx.KindValidation))
}
