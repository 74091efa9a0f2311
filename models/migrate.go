package models

import "gorm.io/gorm"

// All 마이그레이션 대상 모델
func All() []any {
	return []any{
		&Student{},
		&Post{},
		&Comment{},
		&SubComment{},
		&PostLike{},
		&PostImage{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
