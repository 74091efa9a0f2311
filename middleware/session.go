package middleware

import (
	"errors"
	"net/http"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao/cache"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/jwt"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Session 쿠키로 세션을 찾아 컨텍스트에 넣는다.
// 쿠키가 없거나 잘못돼도 요청을 막지 않고 비로그인으로 처리한다
func Session(conf *config.Session, store *cache.SessionStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := SessionIDFromCookie(c, conf)
		if sid != "" {
			data, err := store.Get(c.Request.Context(), sid)
			switch {
			case err == nil:
				c.Set(context.CtxSession, &context.Session{
					ID:          data.ID,
					StudentID:   data.StudentID,
					StudentName: data.StudentName,
					Role:        data.Role,
				})
			case !errors.Is(err, cache.ErrSessionNotFound):
				log.L.Warn("session lookup failed", zap.Error(err))
			}
		}

		c.Next()
	}
}

// SessionIDFromCookie 서명이 맞지 않으면 빈 문자열
func SessionIDFromCookie(c *gin.Context, conf *config.Session) string {
	value, err := c.Cookie(conf.CookieName)
	if err != nil || value == "" {
		return ""
	}
	if !conf.UseSigner {
		return value
	}
	claims, err := jwt.ParseToken([]byte(conf.Key), value)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

// WriteSessionCookie permanent 가 아니면 브라우저 세션 쿠키
func WriteSessionCookie(c *gin.Context, conf *config.Session, sid string) error {
	value := sid
	if conf.UseSigner {
		token, err := jwt.GenerateToken([]byte(conf.Key), sid, conf.Lifetime)
		if err != nil {
			return err
		}
		value = token
	}

	maxAge := 0
	if conf.Permanent {
		maxAge = int(conf.Lifetime.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.CookieName, value, maxAge, "/", "", conf.Secure, true)
	return nil
}

func ClearSessionCookie(c *gin.Context, conf *config.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.CookieName, "", -1, "/", "", conf.Secure, true)
}
