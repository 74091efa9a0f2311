package service

import (
	"context"
	"errors"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao/cache"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/encrypt"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MsgLoginBlank   = "ID와 비밀번호를 모두 입력해주세요."
	MsgLoginInvalid = "잘못된 ID 또는 비밀번호입니다."
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	// Login 성공하면 새 세션을 만든다
	Login(ctx context.Context, studentID, password string) (*cache.SessionData, error)
	// Logout 세션이 없어도 성공
	Logout(ctx context.Context, sessionID string) error
}

type AuthService struct {
	StudentDAO *dao.StudentDAO
	Sessions   *cache.SessionStorage
}

func (s *AuthService) Login(ctx context.Context, studentID, password string) (*cache.SessionData, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" || password == "" {
		return nil, errorx.Validation(MsgLoginBlank)
	}

	student, err := s.StudentDAO.FindByID(ctx, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.Auth(MsgLoginInvalid)
	}
	if err != nil {
		return nil, errorx.Internal(err)
	}
	if !encrypt.VerifyPassword(student.StudentPw, password) {
		return nil, errorx.Auth(MsgLoginInvalid)
	}

	if encrypt.NeedsRehash(student.StudentPw) {
		if hashed := encrypt.HashPassword(password); hashed != "" {
			if err := s.StudentDAO.UpdatePassword(ctx, student.StudentID, hashed); err != nil {
				log.L.Warn("password rehash failed", zap.String("student_id", student.StudentID), zap.Error(err))
			}
		}
	}

	role := types.RoleStudent
	if student.IsAdmin {
		role = types.RoleAdmin
	}
	sess, err := s.Sessions.Create(ctx, student.StudentID, student.StudentName, role)
	if err != nil {
		return nil, errorx.Internal(err)
	}
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		log.L.Warn("session delete failed", zap.Error(err))
	}
	return nil
}
