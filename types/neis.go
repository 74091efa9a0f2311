package types

// Meal 급식 한 끼. 키 이름은 프론트엔드가 쓰는 그대로
type Meal struct {
	SchoolName string `json:"학교명"`
	Date       string `json:"급식일자"`
	Menu       string `json:"메뉴"`
	Calorie    string `json:"칼로리"`
	Nutrition  string `json:"영양정보"`
}

const (
	MealLunch  = "중식"
	MealDinner = "석식"
)

type ScheduleEvent struct {
	Date    string `json:"날짜"`
	Name    string `json:"행사명"`
	Content string `json:"행사내용"`
}

type ScheduleRequest struct {
	Year  string `form:"year"`
	Month string `form:"month"`
}

type TimetableRequest struct {
	Grade Label `json:"grade"`
	Class Label `json:"class"`
}

type TimetableEntry struct {
	Grade   string `json:"grade"`
	Class   string `json:"class"`
	Period  string `json:"period"`
	Subject string `json:"subject"`
}

// TimetableResponse 데이터가 없을 때는 Message 로 이유를 알려준다
type TimetableResponse struct {
	Data    []*TimetableEntry `json:"data"`
	Message string            `json:"message"`
}

const (
	TimetableMsgRequestFailed = "시간표 API 요청 실패"
	TimetableMsgHoliday       = "오늘은 쉬는날"
	TimetableMsgNoData        = "시간표 데이터가 없습니다."
)
