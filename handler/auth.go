package handler

import (
	"net/http"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/middleware"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/login", context.Wrap(u.Login))
	r.POST("/logout", context.Wrap(u.Logout))
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, service.MsgLoginBlank)
	}

	sess, err := u.AuthService.Login(c.Request.Context(), req.StudentID, req.Password)
	if err != nil {
		return err
	}
	if err := middleware.WriteSessionCookie(c, u.Config.Session, sess.ID); err != nil {
		_ = u.AuthService.Logout(c.Request.Context(), sess.ID)
		return errorx.Internal(err)
	}

	msg := "로그인 성공!"
	if sess.Role == types.RoleAdmin {
		msg = "관리자 로그인 성공!"
	}
	response.Success(c, http.StatusOK, &types.LoginResponse{
		Result:      types.Ok(msg),
		StudentID:   sess.StudentID,
		StudentName: sess.StudentName,
		Role:        sess.Role,
	})
	return nil
}

// Logout 로그인하지 않은 상태여도 성공
func (u *Auth) Logout(c *gin.Context) error {
	sid := middleware.SessionIDFromCookie(c, u.Config.Session)
	if err := u.AuthService.Logout(c.Request.Context(), sid); err != nil {
		return err
	}
	middleware.ClearSessionCookie(c, u.Config.Session)
	response.Success(c, http.StatusOK, types.Ok("로그아웃 되었습니다."))
	return nil
}
