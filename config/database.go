package config

import (
	"fmt"
	"time"
)

const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Database 데이터베이스 설정
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	// Path sqlite 파일 경로
	Path string `json:"path" yaml:"path"`

	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

func (d *Database) applyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverMySQL
	}
	if d.Host == "" {
		d.Host = "127.0.0.1"
	}
	if d.Port == 0 {
		switch d.Driver {
		case DriverPostgres:
			d.Port = 5432
		default:
			d.Port = 3306
		}
	}
	if d.Charset == "" {
		d.Charset = "utf8mb4"
	}
	if d.Path == "" {
		d.Path = "ohsung.db"
	}
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = 20
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

// Dsn 드라이버별 접속 문자열
func (d *Database) Dsn() string {
	switch d.Driver {
	case DriverSQLite:
		return d.Path
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Seoul",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database, d.Charset)
	}
}
