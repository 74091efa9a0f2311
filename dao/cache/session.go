package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionData redis 해시 하나에 저장되는 로그인 정보
type SessionData struct {
	ID          string
	StudentID   string
	StudentName string
	Role        string
	CreatedAt   time.Time
}

type SessionStorage struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionStorage(rds *redis.Client, conf *config.Session) *SessionStorage {
	return &SessionStorage{redis: rds, prefix: conf.KeyPrefix, ttl: conf.Lifetime}
}

// Create 새 세션 id 를 발급하고 저장한다
func (s *SessionStorage) Create(ctx context.Context, studentID, studentName, role string) (*SessionData, error) {
	data := &SessionData{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		StudentName: studentName,
		Role:        role,
		CreatedAt:   time.Now(),
	}

	key := s.name(data.ID)
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"student_id", data.StudentID,
			"student_name", data.StudentName,
			"role", data.Role,
			"created_at", strconv.FormatInt(data.CreatedAt.Unix(), 10),
		)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Get 만료됐거나 없으면 ErrSessionNotFound
func (s *SessionStorage) Get(ctx context.Context, sid string) (*SessionData, error) {
	if sid == "" {
		return nil, ErrSessionNotFound
	}
	fields, err := s.redis.HGetAll(ctx, s.name(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 || fields["student_id"] == "" {
		return nil, ErrSessionNotFound
	}

	data := &SessionData{
		ID:          sid,
		StudentID:   fields["student_id"],
		StudentName: fields["student_name"],
		Role:        fields["role"],
	}
	if ts, err := strconv.ParseInt(fields["created_at"], 10, 64); err == nil {
		data.CreatedAt = time.Unix(ts, 0)
	}
	return data, nil
}

// Delete 없는 세션이어도 오류가 아니다
func (s *SessionStorage) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.redis.Del(ctx, s.name(sid)).Err()
}

func (s *SessionStorage) name(sid string) string {
	return s.prefix + sid
}
