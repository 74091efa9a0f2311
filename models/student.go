package models

// Student 학생 계정. 가입은 이 서비스 밖에서 처리한다
type Student struct {
	StudentID   string `gorm:"column:student_id;primaryKey;type:varchar(20)" json:"student_id"`
	StudentName string `gorm:"column:student_name;type:varchar(50);not null" json:"student_name"`
	StudentPw   string `gorm:"column:student_pw;type:varchar(255);not null" json:"-"`
	IsAdmin     bool   `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
}

func (Student) TableName() string {
	return "Students"
}
