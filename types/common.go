package types

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// 익명 글 작성자 표시
const AnonymousName = "익명"

// TimeLayout 응답에 쓰는 시각 형식
const TimeLayout = "2006-01-02 15:04:05"

// 페이지 기본값
const (
	DefaultPage     int = 1
	DefaultPageSize int = 10
	MaxPageSize     int = 100
)

// Result 모든 응답의 공통 필드
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func Ok(msg string) Result {
	return Result{Status: StatusSuccess, Message: msg}
}

type ErrorResponse struct {
	Result
	Detail string `json:"detail,omitempty"`
}
