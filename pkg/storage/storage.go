// Package storage 게시물 이미지 원본을 보관하는 곳.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("storage: object not found")
	ErrInvalidName = errors.New("storage: invalid object name")
	ErrExists      = errors.New("storage: object already exists")
)

// Object 열린 파일. 다 읽으면 Close 해야 한다
type Object struct {
	Body io.ReadCloser
	Size int64
}

type Storage interface {
	// Put name 은 경로 구분자가 없는 단일 이름이어야 한다
	Put(ctx context.Context, name string, r io.Reader) error
	Open(ctx context.Context, name string) (*Object, error)
	Delete(ctx context.Context, name string) error
}

// ValidName 하위 경로나 상위 디렉터리를 가리키는 이름을 막는다
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}
