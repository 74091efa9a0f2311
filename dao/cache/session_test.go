package cache

import (
	"context"
	"testing"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*SessionStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	conf := &config.Session{KeyPrefix: "session:", Lifetime: time.Hour}
	return NewSessionStorage(rds, conf), mr
}

func TestSessionStorage_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStorage(t)

	data, err := st.Create(ctx, "20301", "홍길동", "student")
	require.NoError(t, err)
	require.NotEmpty(t, data.ID)
	assert.True(t, mr.Exists("session:"+data.ID))
	assert.Equal(t, time.Hour, mr.TTL("session:"+data.ID))

	got, err := st.Get(ctx, data.ID)
	require.NoError(t, err)
	assert.Equal(t, "20301", got.StudentID)
	assert.Equal(t, "홍길동", got.StudentName)
	assert.Equal(t, "student", got.Role)
	assert.Equal(t, data.CreatedAt.Unix(), got.CreatedAt.Unix())

	require.NoError(t, st.Delete(ctx, data.ID))
	_, err = st.Get(ctx, data.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// 두 번 지워도 된다
	require.NoError(t, st.Delete(ctx, data.ID))
}

func TestSessionStorage_Expired(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestStorage(t)

	data, err := st.Create(ctx, "20301", "홍길동", "admin")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = st.Get(ctx, data.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_UnknownID(t *testing.T) {
	st, _ := newTestStorage(t)

	_, err := st.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
