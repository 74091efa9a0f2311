package handler

import (
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/gin-gonic/gin"
)

const msgBadRequest = "요청 형식이 올바르지 않습니다."

type Post struct {
	PostService  service.IPostService
	LikeService  service.ILikeService
	ImageService service.IImageService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	posts := r.Group("/api/posts")
	posts.POST("", context.Wrap(p.CreatePost))
	posts.GET("", context.Wrap(p.ListPosts))
	posts.GET("/:id", context.Wrap(p.GetPost))
	posts.POST("/:id/like", context.Wrap(p.ToggleLike))
	posts.GET("/images/:filename", context.Wrap(p.Image))
}

// pathID 숫자가 아니면 없는 대상으로 본다
func pathID(c *gin.Context, key, notFound string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || id == 0 {
		return 0, errorx.NotFound(notFound)
	}
	return id, nil
}

// uploadedFiles images 필드를 먼저, 나머지 파일 필드는 이름순으로
func uploadedFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	files := append([]*multipart.FileHeader{}, form.File["images"]...)
	keys := make([]string, 0, len(form.File))
	for k := range form.File {
		if k != "images" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		files = append(files, form.File[k]...)
	}
	return files, nil
}

// CreatePost JSON 또는 multipart (이미지 첨부)
func (p *Post) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, msgBadRequest)
	}
	files, err := uploadedFiles(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, msgBadRequest)
	}

	res, err := p.PostService.CreatePost(c.Request.Context(), context.GetStudentID(c), &req, files)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, res)
	return nil
}

func (p *Post) ListPosts(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "유효한 페이지/크기를 입력하세요.")
	}

	res, err := p.PostService.ListPosts(c.Request.Context(), req.Page, req.Size)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, res)
	return nil
}

func (p *Post) GetPost(c *gin.Context) error {
	postID, err := pathID(c, "id", service.MsgPostNotFound)
	if err != nil {
		return err
	}

	res, err := p.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, res)
	return nil
}

func (p *Post) ToggleLike(c *gin.Context) error {
	postID, err := pathID(c, "id", service.MsgPostNotFound)
	if err != nil {
		return err
	}

	res, err := p.LikeService.ToggleLike(c.Request.Context(), context.GetStudentID(c), postID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, res)
	return nil
}

// Image 첨부 이미지 원본
func (p *Post) Image(c *gin.Context) error {
	obj, contentType, err := p.ImageService.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		return err
	}
	defer obj.Body.Close()

	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, map[string]string{
		"Cache-Control":          "public, max-age=86400",
		"X-Content-Type-Options": "nosniff",
	})
	return nil
}
