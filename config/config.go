package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 설정 정보
type Config struct {
	App      *App       `json:"app" yaml:"app"`
	Server   *Server    `json:"server" yaml:"server"`
	Database *Database  `json:"database" yaml:"database"`
	Redis    *Redis     `json:"redis" yaml:"redis"`
	Session  *Session   `json:"session" yaml:"session"`
	Upload   *Upload    `json:"upload" yaml:"upload"`
	Oss      *OssConfig `json:"oss" yaml:"oss"`
	Neis     *Neis      `json:"neis" yaml:"neis"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
	// AllowOrigins 비어 있으면 요청 Origin 을 그대로 돌려준다
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

// New 설정 파일을 읽는다. .env 가 있으면 먼저 환경변수로 올리고
// 파일 안의 ${VAR} 는 환경변수로 치환한다.
func New(filename string) *Config {
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("설정 파일 파싱 실패 %s: %v", filename, err))
	}

	return conf
}

// Parse 는 환경변수 치환 후 yaml 을 해석하고 기본값을 채운다.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 5000
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	c.Database.applyDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	c.Redis.applyDefaults()
	if c.Session == nil {
		c.Session = &Session{}
	}
	c.Session.applyDefaults()
	if c.Upload == nil {
		c.Upload = &Upload{}
	}
	c.Upload.applyDefaults()
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Neis == nil {
		c.Neis = &Neis{}
	}
	c.Neis.applyDefaults()
}

// Debug 디버그 모드
func (c *Config) Debug() bool {
	return c.App.Debug
}
