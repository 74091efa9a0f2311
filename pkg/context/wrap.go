package context

import (
	"errors"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxSession = "session"
)

// Session 요청에 붙는 로그인 정보
type Session struct {
	ID          string
	StudentID   string
	StudentName string
	Role        string
}

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 이미 응답을 썼으면 그대로 둔다
			if c.Writer.Written() {
				return
			}

			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg, "")
				return
			}

			var xe *errorx.Error
			if errors.As(err, &xe) {
				detail := ""
				if xe.Kind == errorx.KindInternal && xe.Err != nil {
					detail = xe.Err.Error()
					log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(xe.Err))
				}
				response.Fail(c, xe.Kind.HTTPStatus(), xe.Msg, detail)
				return
			}

			log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			response.Fail(c, errorx.KindInternal.HTTPStatus(), "서버 오류가 발생했습니다.", err.Error())
		}
	}
}

// GetSession 로그인하지 않았으면 nil
func GetSession(c *gin.Context) *Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil
	}
	s, ok := v.(*Session)
	if !ok {
		return nil
	}
	return s
}

// GetStudentID 학생 세션의 학번. 관리자 세션이나 비로그인은 빈 문자열
func GetStudentID(c *gin.Context) string {
	s := GetSession(c)
	if s == nil || s.Role != types.RoleStudent {
		return ""
	}
	return s.StudentID
}
