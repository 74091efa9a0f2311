package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/database"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/encrypt"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type board struct {
	db       *gorm.DB
	dir      string
	images   *ImageService
	posts    *PostService
	likes    *LikeService
	comments *CommentsService
	students *dao.StudentDAO
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newBoard(t *testing.T) *board {
	t.Helper()
	db := newTestDB(t)

	dir := t.TempDir()
	st, err := storage.NewLocal(dir)
	require.NoError(t, err)

	verify := true
	upload := &config.Upload{
		Dir:               dir,
		MaxBytes:          2048,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
		Backend:           config.UploadBackendLocal,
		VerifyContent:     &verify,
	}

	students := dao.NewStudentDAO(db)
	postDAO := dao.NewPostDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	subDAO := dao.NewSubCommentDAO(db)
	imageDAO := dao.NewPostImageDAO(db)

	images := &ImageService{Config: upload, Storage: st, ImageDAO: imageDAO}
	b := &board{
		db:     db,
		dir:    dir,
		images: images,
		posts: &PostService{
			StudentDAO:    students,
			PostDAO:       postDAO,
			CommentDAO:    commentDAO,
			SubCommentDAO: subDAO,
			PostImageDAO:  imageDAO,
			Images:        images,
		},
		likes: &LikeService{
			StudentDAO: students,
			PostDAO:    postDAO,
			LikeDAO:    dao.NewPostLikeDAO(db),
		},
		comments: &CommentsService{
			StudentDAO:    students,
			PostDAO:       postDAO,
			CommentDAO:    commentDAO,
			SubCommentDAO: subDAO,
		},
		students: students,
	}
	return b
}

func (b *board) addStudent(t *testing.T, id, name, password string, admin bool) {
	t.Helper()
	require.NoError(t, b.db.Create(&models.Student{
		StudentID:   id,
		StudentName: name,
		StudentPw:   encrypt.HashPassword(password),
		IsAdmin:     admin,
	}).Error)
}

func (b *board) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(b.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (b *board) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, b.db.Model(model).Count(&n).Error)
	return n
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type upload struct {
	name string
	data []byte
}

// multipartFiles multipart 본문을 실제로 만들고 다시 파싱한다
func multipartFiles(t *testing.T, uploads ...upload) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := w.CreateFormFile("images", u.name)
		require.NoError(t, err)
		_, err = part.Write(u.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}
