package config

import "strings"

const (
	UploadBackendLocal = "local"
	UploadBackendOss   = "oss"
)

// Upload 게시물 이미지 업로드 설정
type Upload struct {
	Dir               string   `json:"dir" yaml:"dir"`
	MaxBytes          int64    `json:"max_bytes" yaml:"max_bytes"`
	AllowedExtensions []string `json:"allowed_extensions" yaml:"allowed_extensions"`
	Backend           string   `json:"backend" yaml:"backend"`
	VerifyContent     *bool    `json:"verify_content" yaml:"verify_content"`
	// MultipartMemory gin 이 메모리에 올리는 multipart 최대 크기
	MultipartMemory int64 `json:"multipart_memory" yaml:"multipart_memory"`
}

func (u *Upload) applyDefaults() {
	if u.Dir == "" {
		u.Dir = "uploads/posts"
	}
	if u.MaxBytes == 0 {
		u.MaxBytes = 5 << 20
	}
	if len(u.AllowedExtensions) == 0 {
		u.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	for i, ext := range u.AllowedExtensions {
		u.AllowedExtensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if u.Backend == "" {
		u.Backend = UploadBackendLocal
	}
	if u.VerifyContent == nil {
		v := true
		u.VerifyContent = &v
	}
	if u.MultipartMemory == 0 {
		u.MultipartMemory = 32 << 20
	}
}

// IsAllowed 확장자(점 제외, 소문자)가 허용 목록에 있는지
func (u *Upload) IsAllowed(ext string) bool {
	if len(u.AllowedExtensions) == 0 {
		return true
	}
	for _, allowed := range u.AllowedExtensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

func (u *Upload) ShouldVerifyContent() bool {
	return u.VerifyContent != nil && *u.VerifyContent
}
