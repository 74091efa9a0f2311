package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	ossclient "github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/oss"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// OSS 객체 키는 Prefix/name
type OSS struct {
	Client *oss.Client
	Bucket string
	Prefix string
}

func NewOSS(conf *config.OssConfig) *OSS {
	return &OSS{
		Client: ossclient.NewClient(conf),
		Bucket: conf.Bucket,
		Prefix: conf.Prefix,
	}
}

func (o *OSS) key(name string) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName
	}
	if o.Prefix == "" {
		return name, nil
	}
	return path.Join(o.Prefix, name), nil
}

func (o *OSS) Put(ctx context.Context, name string, r io.Reader) error {
	key, err := o.key(name)
	if err != nil {
		return err
	}
	_, err = o.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(o.Bucket),
		Key:    oss.Ptr(key),
		Body:   r,
	})
	return err
}

func (o *OSS) Open(ctx context.Context, name string) (*Object, error) {
	key, err := o.key(name)
	if err != nil {
		return nil, err
	}
	out, err := o.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(o.Bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Object{Body: out.Body, Size: out.ContentLength}, nil
}

func (o *OSS) Delete(ctx context.Context, name string) error {
	key, err := o.key(name)
	if err != nil {
		return err
	}
	_, err = o.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(o.Bucket),
		Key:    oss.Ptr(key),
	})
	if isStatus(err, http.StatusNotFound) {
		return ErrNotFound
	}
	return err
}

func isStatus(err error, code int) bool {
	var serr *oss.ServiceError
	return errors.As(err, &serr) && serr.StatusCode == code
}

// New 설정의 upload.backend 에 따라 구현을 고른다
func New(conf *config.Config) (Storage, error) {
	if conf.Upload.Backend == config.UploadBackendOss {
		if conf.Oss == nil || conf.Oss.Bucket == "" {
			return nil, errors.New("storage: oss backend requires oss.bucket")
		}
		return NewOSS(conf.Oss), nil
	}
	return NewLocal(conf.Upload.Dir)
}
