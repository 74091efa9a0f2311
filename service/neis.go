package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var _ INeisService = (*NeisService)(nil)

// INeisService 나이스 API 를 한 번 호출해서 모양만 바꿔 돌려준다.
// 실패해도 오류를 돌려주지 않는다
type INeisService interface {
	// FetchMeal mealType 은 "중식" 또는 "석식", date 는 YYYYMMDD
	FetchMeal(ctx context.Context, mealType, date string) []*types.Meal
	// FetchSchedule year 는 YYYY, month 는 MM
	FetchSchedule(ctx context.Context, year, month string) []*types.ScheduleEvent
	FetchTimetable(ctx context.Context, date, grade, class string) *types.TimetableResponse
}

type NeisService struct {
	Config *config.Neis
	Client *http.Client
}

func NewNeisService(conf *config.Neis) *NeisService {
	return &NeisService{
		Config: conf,
		Client: &http.Client{Timeout: conf.Timeout},
	}
}

func (s *NeisService) params() url.Values {
	v := url.Values{}
	v.Set("KEY", s.Config.Key)
	v.Set("Type", "json")
	v.Set("ATPT_OFCDC_SC_CODE", s.Config.AtptCode)
	v.Set("SD_SCHUL_CODE", s.Config.SchoolCode)
	return v
}

// get 응답 코드와 본문. 전송 실패만 error
func (s *NeisService) get(ctx context.Context, endpoint string, params url.Values) (int, []byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return 0, nil, err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func warnUpstream(api string, err error) {
	log.L.Warn("neis request failed", zap.String("api", api), zap.Error(errorx.Upstream(err)))
}

func (s *NeisService) FetchMeal(ctx context.Context, mealType, date string) []*types.Meal {
	meals := make([]*types.Meal, 0)

	params := s.params()
	params.Set("MLSV_YMD", date)
	status, body, err := s.get(ctx, s.Config.MealURL, params)
	if err != nil {
		warnUpstream("meal", err)
		return meals
	}
	if status != http.StatusOK {
		warnUpstream("meal", fmt.Errorf("status %d", status))
		return meals
	}
	if !gjson.ValidBytes(body) {
		warnUpstream("meal", errors.New("invalid json"))
		return meals
	}

	rows := gjson.GetBytes(body, "mealServiceDietInfo.1.row")
	if !rows.IsArray() {
		return meals
	}
	for _, row := range rows.Array() {
		kind := row.Get("MMEAL_SC_NM")
		if !kind.Exists() {
			return make([]*types.Meal, 0)
		}
		if kind.String() != mealType {
			continue
		}
		school, ymd, dish, cal, ntr := row.Get("SCHUL_NM"), row.Get("MLSV_YMD"), row.Get("DDISH_NM"), row.Get("CAL_INFO"), row.Get("NTR_INFO")
		// 필수 필드가 하나라도 없으면 응답 형식이 바뀐 것으로 본다
		if !school.Exists() || !ymd.Exists() || !dish.Exists() || !cal.Exists() || !ntr.Exists() {
			return make([]*types.Meal, 0)
		}
		meals = append(meals, &types.Meal{
			SchoolName: school.String(),
			Date:       ymd.String(),
			Menu:       strings.ReplaceAll(dish.String(), "<br/>", "\n"),
			Calorie:    cal.String(),
			Nutrition:  ntr.String(),
		})
	}
	return meals
}

func (s *NeisService) FetchSchedule(ctx context.Context, year, month string) []*types.ScheduleEvent {
	events := make([]*types.ScheduleEvent, 0)

	params := s.params()
	params.Set("AA_FROM_YMD", year+month+"01")
	params.Set("AA_TO_YMD", year+month+"31")
	status, body, err := s.get(ctx, s.Config.ScheduleURL, params)
	if err != nil {
		warnUpstream("schedule", err)
		return events
	}
	if status != http.StatusOK {
		warnUpstream("schedule", fmt.Errorf("status %d", status))
		return events
	}
	if !gjson.ValidBytes(body) {
		warnUpstream("schedule", errors.New("invalid json"))
		return events
	}

	rows := gjson.GetBytes(body, "SchoolSchedule.1.row")
	if !rows.IsArray() {
		return events
	}
	for _, row := range rows.Array() {
		day := row.Get("AA_YMD")
		if !day.Exists() {
			return make([]*types.ScheduleEvent, 0)
		}
		events = append(events, &types.ScheduleEvent{
			Date:    day.String(),
			Name:    row.Get("EVENT_NM").String(),
			Content: row.Get("EVENT_CNTNT").String(),
		})
	}
	return events
}

func (s *NeisService) FetchTimetable(ctx context.Context, date, grade, class string) *types.TimetableResponse {
	failed := &types.TimetableResponse{Data: make([]*types.TimetableEntry, 0), Message: types.TimetableMsgRequestFailed}

	params := s.params()
	params.Set("GRADE", grade)
	params.Set("CLASS_NM", class)
	params.Set("TI_FROM_YMD", date)
	params.Set("TI_TO_YMD", date)
	status, body, err := s.get(ctx, s.Config.TimetableURL, params)
	if err != nil {
		warnUpstream("timetable", err)
		return failed
	}
	if status != http.StatusOK {
		warnUpstream("timetable", fmt.Errorf("status %d", status))
		return failed
	}

	if entries, ok := timetableRows(body); ok {
		return &types.TimetableResponse{Data: entries, Message: ""}
	}

	code := gjson.GetBytes(body, "hisTimetable.0.head.1.RESULT.CODE")
	if !code.Exists() {
		code = gjson.GetBytes(body, "RESULT.CODE")
	}
	msg := types.TimetableMsgNoData
	if code.String() == "INFO-200" {
		msg = types.TimetableMsgHoliday
	}
	return &types.TimetableResponse{Data: make([]*types.TimetableEntry, 0), Message: msg}
}

// timetableRows 행 목록이 없거나 필드가 빠져 있으면 false
func timetableRows(body []byte) ([]*types.TimetableEntry, bool) {
	if !gjson.ValidBytes(body) {
		return nil, false
	}
	rows := gjson.GetBytes(body, "hisTimetable.1.row")
	if !rows.IsArray() {
		return nil, false
	}

	entries := make([]*types.TimetableEntry, 0, len(rows.Array()))
	for _, row := range rows.Array() {
		grade, class, period, subject := row.Get("GRADE"), row.Get("CLASS_NM"), row.Get("PERIO"), row.Get("ITRT_CNTNT")
		if !grade.Exists() || !class.Exists() || !period.Exists() || !subject.Exists() {
			return nil, false
		}
		entries = append(entries, &types.TimetableEntry{
			Grade:   grade.String(),
			Class:   class.String(),
			Period:  period.String(),
			Subject: subject.String(),
		})
	}
	return entries, true
}
