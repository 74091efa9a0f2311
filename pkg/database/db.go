package database

import (
	"fmt"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 데이터베이스 연결 초기화
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database, conf.Debug())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

func Open(conf *config.Database, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn())
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Dsn())
	case config.DriverSQLite:
		return OpenSQLite(conf.Dsn())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	gormConf := &gorm.Config{}
	if !debug {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}
	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	return db, nil
}

// OpenSQLite 로컬 개발과 테스트용. 쓰기가 겹치지 않도록 연결은 하나만 쓴다
func OpenSQLite(path string) (*gorm.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.Open(path+sep+"_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
