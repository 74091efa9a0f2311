package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao/cache"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *board) {
	t.Helper()
	b := newBoard(t)

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	sessions := cache.NewSessionStorage(rds, &config.Session{KeyPrefix: "session:", Lifetime: time.Hour})
	return &AuthService{StudentDAO: dao.NewStudentDAO(b.db), Sessions: sessions}, b
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, b := newAuthService(t)
	b.addStudent(t, "20301", "홍길동", "secret", false)
	b.addStudent(t, "admin", "관리자", "root", true)

	sess, err := s.Login(ctx, "20301", "secret")
	require.NoError(t, err)
	assert.Equal(t, types.RoleStudent, sess.Role)
	assert.Equal(t, "홍길동", sess.StudentName)

	got, err := s.Sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "20301", got.StudentID)

	admin, err := s.Login(ctx, "admin", "root")
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, admin.Role)

	require.NoError(t, s.Logout(ctx, sess.ID))
	_, err = s.Sessions.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, cache.ErrSessionNotFound)
	require.NoError(t, s.Logout(ctx, ""))
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	s, b := newAuthService(t)
	b.addStudent(t, "20301", "홍길동", "secret", false)

	_, err := s.Login(ctx, "", "secret")
	assert.True(t, errorx.Is(err, errorx.KindValidation))
	_, err = s.Login(ctx, "20301", "")
	assert.True(t, errorx.Is(err, errorx.KindValidation))

	_, err = s.Login(ctx, "20301", "wrong")
	assert.True(t, errorx.Is(err, errorx.KindAuth))
	_, err = s.Login(ctx, "nobody", "secret")
	assert.True(t, errorx.Is(err, errorx.KindAuth))
}

func TestLogin_LegacyHashIsUpgraded(t *testing.T) {
	ctx := context.Background()
	s, b := newAuthService(t)

	sum := sha256.Sum256([]byte("old-pw"))
	require.NoError(t, b.db.Create(&models.Student{
		StudentID:   "10101",
		StudentName: "옛날",
		StudentPw:   hex.EncodeToString(sum[:]),
	}).Error)

	_, err := s.Login(ctx, "10101", "old-pw")
	require.NoError(t, err)

	var stored models.Student
	require.NoError(t, b.db.First(&stored, "student_id = ?", "10101").Error)
	assert.Contains(t, stored.StudentPw[:3], "$2")

	_, err = s.Login(ctx, "10101", "old-pw")
	require.NoError(t, err)
}
