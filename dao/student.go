package dao

import (
	"context"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/models"

	"gorm.io/gorm"
)

type StudentDAO struct {
	Repo[models.Student]
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{Repo: NewRepo[models.Student](db)}
}

// FindByID 없으면 gorm.ErrRecordNotFound
func (d *StudentDAO) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	return d.FindByWhere(ctx, "student_id = ?", studentID)
}

func (d *StudentDAO) Exists(ctx context.Context, studentID string) (bool, error) {
	return d.IsExist(ctx, "student_id = ?", studentID)
}

// NamesByIDs 학번 → 이름. 없는 학번은 결과에 빠진다
func (d *StudentDAO) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []models.Student
	err := d.Db.WithContext(ctx).
		Select("student_id", "student_name").
		Where("student_id IN ?", uniqueStrings(ids)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		names[r.StudentID] = r.StudentName
	}
	return names, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func uniqueIDs(in []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(in))
	out := make([]uint64, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// UpdatePassword 레거시 해시를 bcrypt 로 바꿀 때 쓴다
func (d *StudentDAO) UpdatePassword(ctx context.Context, studentID, hashed string) error {
	return d.Model(ctx).Where("student_id = ?", studentID).Update("student_pw", hashed).Error
}
