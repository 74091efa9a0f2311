package handler

import (
	"net/http"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	comments := r.Group("/api/posts/:id/comments")
	comments.POST("", context.Wrap(ch.CreateComment))
	comments.POST("/:cid/replies", context.Wrap(ch.CreateReply))
	comments.GET("/:cid/replies", context.Wrap(ch.ListReplies))
}

func (ch *CommentsHandler) ids(c *gin.Context) (uint64, uint64, error) {
	postID, err := pathID(c, "id", service.MsgPostNotFound)
	if err != nil {
		return 0, 0, err
	}
	commentID, err := pathID(c, "cid", service.MsgCommentNotFound)
	if err != nil {
		return 0, 0, err
	}
	return postID, commentID, nil
}

func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	postID, err := pathID(c, "id", service.MsgPostNotFound)
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, msgBadRequest)
	}

	res, err := ch.CommentsService.CreateComment(c.Request.Context(), context.GetStudentID(c), postID, &req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, res)
	return nil
}

// CreateReply 댓글에 답글
func (ch *CommentsHandler) CreateReply(c *gin.Context) error {
	postID, commentID, err := ch.ids(c)
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, msgBadRequest)
	}

	res, err := ch.CommentsService.CreateReply(c.Request.Context(), context.GetStudentID(c), postID, commentID, &req)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, res)
	return nil
}

func (ch *CommentsHandler) ListReplies(c *gin.Context) error {
	postID, commentID, err := ch.ids(c)
	if err != nil {
		return err
	}

	res, err := ch.CommentsService.ListReplies(c.Request.Context(), postID, commentID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, res)
	return nil
}
