package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao/cache"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/handler"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/database"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/encrypt"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/storage"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type testApp struct {
	engine *gin.Engine
	neis   *httptest.Server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Parse([]byte(`
app:
  env: test
session:
  key: test-signing-key
  use_signer: true
  permanent: true
neis:
  key: test
`))
	require.NoError(t, err)

	neis := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"RESULT":{"CODE":"INFO-200","MESSAGE":"해당하는 데이터가 없습니다."}}`))
	}))
	t.Cleanup(neis.Close)
	cfg.Neis.MealURL = neis.URL
	cfg.Neis.ScheduleURL = neis.URL
	cfg.Neis.TimetableURL = neis.URL
	cfg.Upload.Dir = t.TempDir()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, db.Create(&models.Student{
		StudentID:   "20301",
		StudentName: "김오성",
		StudentPw:   encrypt.HashPassword("pw1234"),
	}).Error)

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	sessions := cache.NewSessionStorage(rds, cfg.Session)

	st, err := storage.New(cfg)
	require.NoError(t, err)

	students := dao.NewStudentDAO(db)
	posts := dao.NewPostDAO(db)
	comments := dao.NewCommentDAO(db)
	replies := dao.NewSubCommentDAO(db)
	images := dao.NewPostImageDAO(db)
	imageService := &service.ImageService{Config: cfg.Upload, Storage: st, ImageDAO: images}

	h := &Handlers{
		Auth: &handler.Auth{
			Config:      cfg,
			AuthService: &service.AuthService{StudentDAO: students, Sessions: sessions},
		},
		MainPage: &handler.MainPage{},
		Neis:     &handler.Neis{NeisService: service.NewNeisService(cfg.Neis)},
		Post: &handler.Post{
			PostService: &service.PostService{
				StudentDAO:    students,
				PostDAO:       posts,
				CommentDAO:    comments,
				SubCommentDAO: replies,
				PostImageDAO:  images,
				Images:        imageService,
			},
			LikeService:  &service.LikeService{StudentDAO: students, PostDAO: posts, LikeDAO: dao.NewPostLikeDAO(db)},
			ImageService: imageService,
		},
		CommentsHandler: &handler.CommentsHandler{
			CommentsService: &service.CommentsService{
				StudentDAO:    students,
				PostDAO:       posts,
				CommentDAO:    comments,
				SubCommentDAO: replies,
			},
		},
	}
	return &testApp{engine: NewGinEngine(cfg, sessions, h), neis: neis}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) json(method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, cookies...)
}

func (a *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := a.json(http.MethodPost, "/login", map[string]string{"student_id": "20301", "password": "pw1234"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("session cookie missing")
	return nil
}

func TestMainPage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/main", rec.Header().Get("Location"))

	rec = app.do(httptest.NewRequest(http.MethodGet, "/main", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", gjson.Get(rec.Body.String(), "status").String())
	assert.True(t, gjson.Get(rec.Body.String(), "icons.#").Int() > 0)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", gjson.Get(rec.Body.String(), "status").String())
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t)
	app.do(httptest.NewRequest(http.MethodGet, "/main", nil))

	rec := app.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ohsung_eta_http_requests_total")
}

func TestLogin_Failures(t *testing.T) {
	app := newTestApp(t)

	rec := app.json(http.MethodPost, "/login", map[string]string{"student_id": "20301", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = app.json(http.MethodPost, "/login", map[string]string{"student_id": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, app.do(req).Code)
}

func TestBoardFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.json(http.MethodPost, "/api/posts", map[string]any{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := app.login(t)

	rec = app.json(http.MethodPost, "/api/posts", map[string]any{"title": "첫 글", "content": "내용", "is_anonymous": "1"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	postID := gjson.Get(rec.Body.String(), "post_id").Int()
	require.NotZero(t, postID)
	id := strconv.FormatInt(postID, 10)

	rec = app.json(http.MethodGet, "/api/posts?page=1&size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, int64(1), gjson.Get(body, "total").Int())
	assert.Equal(t, "익명", gjson.Get(body, "items.0.student_name").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "items.0.student_id").Type)

	rec = app.json(http.MethodGet, "/api/posts?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.json(http.MethodPost, "/api/posts/"+id+"/like", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "liked").Bool())
	assert.Equal(t, int64(1), gjson.Get(rec.Body.String(), "like_count").Int())

	rec = app.json(http.MethodPost, "/api/posts/"+id+"/comments", map[string]any{"content": "댓글"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cid := strconv.FormatInt(gjson.Get(rec.Body.String(), "comment_id").Int(), 10)

	rec = app.json(http.MethodPost, "/api/posts/"+id+"/comments/"+cid+"/replies", map[string]any{"content": "답글", "is_anonymous": true}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.json(http.MethodGet, "/api/posts/"+id+"/comments/"+cid+"/replies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "답글", gjson.Get(rec.Body.String(), "sub_comments.0.content").String())

	rec = app.json(http.MethodGet, "/api/posts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Equal(t, "첫 글", gjson.Get(body, "post.title").String())
	assert.Equal(t, int64(1), gjson.Get(body, "post.like_count").Int())
	assert.Equal(t, "김오성", gjson.Get(body, "comments.0.student_name").String())
	assert.Equal(t, "익명", gjson.Get(body, "comments.0.replies.0.student_name").String())

	rec = app.json(http.MethodGet, "/api/posts/999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = app.json(http.MethodGet, "/api/posts/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.json(http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.json(http.MethodPost, "/api/posts/"+id+"/like", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePost_WithImage(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("title", "사진"))
	require.NoError(t, w.WriteField("content", "첨부"))
	part, err := w.CreateFormFile("images", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := app.do(req, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	url := gjson.Get(rec.Body.String(), "images.0.url").String()
	require.NotEmpty(t, url)
	assert.Equal(t, "photo.png", gjson.Get(rec.Body.String(), "images.0.original_name").String())

	rec = app.do(httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, img.Bytes(), rec.Body.Bytes())

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/posts/images/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNeisRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/meal_lunch?date=20240315", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(httptest.NewRequest(http.MethodGet, "/meal_dinner?date=2024-03-15", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(httptest.NewRequest(http.MethodGet, "/schedule?year=2024&month=13", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.json(http.MethodPost, "/timetable", map[string]any{"grade": "", "class": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.json(http.MethodPost, "/timetable", map[string]any{"grade": 2, "class": "3"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.TimetableMsgHoliday, gjson.Get(rec.Body.String(), "message").String())
}

func TestCORS(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := app.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
