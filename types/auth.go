package types

// 세션 역할. 로그인할 때 is_admin 으로 정해지고 둘 중 하나만 가진다
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type LoginRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type LoginResponse struct {
	Result
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	// Role "student" 또는 "admin"
	Role string `json:"role"`
}
