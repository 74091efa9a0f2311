package config

import "fmt"

// Redis 접속 정보
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

func (r *Redis) applyDefaults() {
	if r.Address == "" {
		r.Address = "127.0.0.1"
	}
	if r.Port == 0 {
		r.Port = 6379
	}
}

func (r *Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}
