package oss

import (
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// NewClient ak/sk 가 비어 있으면 OSS_ACCESS_KEY_ID 등 환경변수에서 읽는다
func NewClient(conf *config.OssConfig) *oss.Client {
	var provider credentials.CredentialsProvider
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}

	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region)
	return oss.NewClient(cfg)
}
