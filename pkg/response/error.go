package response

import (
	"net/http"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"
	"github.com/gin-gonic/gin"
)

// BizError 핸들러 단계(파라미터 바인딩 등)에서 바로 응답 코드가 정해지는 오류
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// Success 성공 응답. body 는 types.Result 를 포함한 구조체
func Success(c *gin.Context, code int, body any) {
	c.JSON(code, body)
}

// Fail 오류 응답
func Fail(c *gin.Context, code int, msg string, detail string) {
	c.JSON(code, types.ErrorResponse{
		Result: types.Result{Status: types.StatusError, Message: msg},
		Detail: detail,
	})
}

// NotFound 라우트가 없을 때
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, "요청한 경로를 찾을 수 없습니다.", "")
}
