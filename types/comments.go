package types

// CreateCommentRequest 댓글과 답글 모두 같은 본문을 쓴다
type CreateCommentRequest struct {
	Content     string `json:"content" form:"content"`
	IsAnonymous Flag   `json:"is_anonymous" form:"is_anonymous"`
}

type CreateCommentResponse struct {
	Result
	CommentID uint64 `json:"comment_id"`
}

type CreateReplyResponse struct {
	Result
	SubCommentID uint64 `json:"sub_comment_id"`
}

type CommentItem struct {
	CommentID   uint64       `json:"comment_id"`
	StudentID   *string      `json:"student_id"`
	StudentName *string      `json:"student_name"`
	Content     string       `json:"content"`
	IsAnonymous bool         `json:"is_anonymous"`
	CreatedAt   string       `json:"created_at"`
	Replies     []*ReplyItem `json:"replies"`
}

type ReplyItem struct {
	SubCommentID uint64  `json:"sub_comment_id"`
	StudentID    *string `json:"student_id"`
	StudentName  *string `json:"student_name"`
	Content      string  `json:"content"`
	IsAnonymous  bool    `json:"is_anonymous"`
	CreatedAt    string  `json:"created_at"`
}

type ListRepliesResponse struct {
	Result
	SubComments []*ReplyItem `json:"sub_comments"`
}
