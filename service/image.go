package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"unicode"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/snowflake"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/storage"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

const MsgImageNotFound = "이미지를 찾을 수 없습니다."

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	// Stage 모든 파일의 이름/확장자/크기를 먼저 확인한 뒤 하나씩 저장한다.
	// 하나라도 실패하면 이미 저장한 파일을 지우고 ValidationError
	Stage(ctx context.Context, files []*multipart.FileHeader) ([]*StagedImage, error)
	ValidateAndStage(ctx context.Context, file *multipart.FileHeader) (*StagedImage, error)
	// Cleanup 실패는 로그만 남긴다
	Cleanup(ctx context.Context, staged []*StagedImage)
	URL(storedName string) string
	// Open 저장된 이미지와 content type
	Open(ctx context.Context, storedName string) (*storage.Object, string, error)
}

// StagedImage 저장소에 올라갔지만 아직 DB 에는 없는 파일
type StagedImage struct {
	OriginalName string
	StoredName   string
	ContentType  string
	FileSize     int64
}

type ImageService struct {
	Config   *config.Upload
	Storage  storage.Storage
	ImageDAO *dao.PostImageDAO
}

// sanitizeName 경로 부분과 제어문자, 구분자를 없애고 앞쪽 점을 지운다
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '/' || r == '\\' || r == ':' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	name = strings.TrimLeft(name, ". ")
	return name
}

func (s *ImageService) tooLarge(name string) error {
	mb := float64(s.Config.MaxBytes) / (1 << 20)
	return errorx.Validation(fmt.Sprintf("이미지 크기는 %.0fMB 이하만 가능합니다: %s", mb, name))
}

// checkHeader 파일을 읽지 않고 할 수 있는 검사
func (s *ImageService) checkHeader(file *multipart.FileHeader) (string, string, error) {
	safe := sanitizeName(file.Filename)
	if safe == "" {
		return "", "", errorx.Validation("유효한 파일 이름이 아닙니다.")
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(safe), "."))
	if ext == "" || !s.Config.IsAllowed(ext) {
		return "", "", errorx.Validation("지원하지 않는 이미지 형식입니다: " + safe)
	}
	if s.Config.MaxBytes > 0 && file.Size > s.Config.MaxBytes {
		return "", "", s.tooLarge(safe)
	}
	return safe, ext, nil
}

func (s *ImageService) ValidateAndStage(ctx context.Context, file *multipart.FileHeader) (*StagedImage, error) {
	safe, ext, err := s.checkHeader(file)
	if err != nil {
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, errorx.Internal(fmt.Errorf("open upload %s: %w", safe, err))
	}
	defer f.Close()

	var r io.Reader = f
	if s.Config.MaxBytes > 0 {
		r = io.LimitReader(f, s.Config.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errorx.Internal(fmt.Errorf("read upload %s: %w", safe, err))
	}
	if s.Config.MaxBytes > 0 && int64(len(data)) > s.Config.MaxBytes {
		return nil, s.tooLarge(safe)
	}

	if s.Config.ShouldVerifyContent() {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, errorx.Validation("올바른 이미지 파일이 아닙니다: " + safe)
		}
	}

	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	staged := &StagedImage{
		OriginalName: safe,
		StoredName:   snowflake.GenFileName("." + ext),
		ContentType:  http.DetectContentType(sniff),
		FileSize:     int64(len(data)),
	}
	if err := s.Storage.Put(ctx, staged.StoredName, bytes.NewReader(data)); err != nil {
		log.L.Error("image store failed", zap.String("name", staged.StoredName), zap.Error(err))
		return nil, errorx.Internal(err)
	}
	return staged, nil
}

func (s *ImageService) Stage(ctx context.Context, files []*multipart.FileHeader) ([]*StagedImage, error) {
	valid := make([]*multipart.FileHeader, 0, len(files))
	for _, f := range files {
		if f == nil || f.Filename == "" {
			continue
		}
		if _, _, err := s.checkHeader(f); err != nil {
			return nil, err
		}
		valid = append(valid, f)
	}

	staged := make([]*StagedImage, 0, len(valid))
	for _, f := range valid {
		img, err := s.ValidateAndStage(ctx, f)
		if err != nil {
			s.Cleanup(ctx, staged)
			return nil, err
		}
		staged = append(staged, img)
	}
	return staged, nil
}

func (s *ImageService) Cleanup(ctx context.Context, staged []*StagedImage) {
	ctx = context.WithoutCancel(ctx)
	for _, img := range staged {
		if err := s.Storage.Delete(ctx, img.StoredName); err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.L.Warn("image cleanup failed", zap.String("name", img.StoredName), zap.Error(err))
		}
	}
}

func (s *ImageService) URL(storedName string) string {
	return types.ImageRoutePrefix + storedName
}

func (s *ImageService) Open(ctx context.Context, storedName string) (*storage.Object, string, error) {
	if !storage.ValidName(storedName) {
		return nil, "", errorx.NotFound(MsgImageNotFound)
	}

	row, err := s.ImageDAO.FindByStoredName(ctx, storedName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", errorx.NotFound(MsgImageNotFound)
	}
	if err != nil {
		return nil, "", errorx.Internal(err)
	}

	obj, err := s.Storage.Open(ctx, storedName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", errorx.NotFound(MsgImageNotFound)
	}
	if err != nil {
		log.L.Error("image open failed", zap.String("name", storedName), zap.Error(err))
		return nil, "", errorx.Internal(err)
	}

	contentType := row.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return obj, contentType, nil
}
