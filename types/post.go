package types

type CreatePostRequest struct {
	Title       string `json:"title" form:"title"`
	Content     string `json:"content" form:"content"`
	IsAnonymous Flag   `json:"is_anonymous" form:"is_anonymous"`
}

type CreatePostResponse struct {
	Result
	PostID uint64       `json:"post_id"`
	Images []*ImageItem `json:"images"`
}

type ListPostsRequest struct {
	Page int `form:"page,default=1"`
	Size int `form:"size,default=10"`
}

// PostDetail 익명 글이면 StudentID 는 null, StudentName 은 "익명"
type PostDetail struct {
	PostID      uint64       `json:"post_id"`
	StudentID   *string      `json:"student_id"`
	StudentName *string      `json:"student_name"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	IsAnonymous bool         `json:"is_anonymous"`
	LikeCount   int64        `json:"like_count"`
	CreatedAt   string       `json:"created_at"`
	Images      []*ImageItem `json:"images"`
}

type PostListItem struct {
	PostDetail
	CommentCount int64 `json:"comment_count"`
}

type ListPostsResponse struct {
	Result
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
	Items []*PostListItem `json:"items"`
}

type PostDetailResponse struct {
	Result
	Post     *PostDetail    `json:"post"`
	Comments []*CommentItem `json:"comments"`
}

type ToggleLikeResponse struct {
	Result
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
