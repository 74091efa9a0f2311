package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/gin-gonic/gin"
)

// Neis 급식, 학사일정, 시간표
type Neis struct {
	NeisService service.INeisService
}

func (n *Neis) RegisterRouter(r gin.IRouter) {
	r.GET("/meal_lunch", context.Wrap(n.MealLunch))
	r.GET("/meal_dinner", context.Wrap(n.MealDinner))
	r.GET("/schedule", context.Wrap(n.Schedule))
	r.POST("/timetable", context.Wrap(n.Timetable))
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (n *Neis) meal(c *gin.Context, mealType string) error {
	date := c.DefaultQuery("date", time.Now().Format("20060102"))
	if !isDigits(date, 8) {
		return response.NewError(http.StatusBadRequest, "날짜는 YYYYMMDD 형식이어야 합니다.")
	}
	c.JSON(http.StatusOK, n.NeisService.FetchMeal(c.Request.Context(), mealType, date))
	return nil
}

func (n *Neis) MealLunch(c *gin.Context) error {
	return n.meal(c, types.MealLunch)
}

func (n *Neis) MealDinner(c *gin.Context) error {
	return n.meal(c, types.MealDinner)
}

// Schedule 한 달치 학사일정
func (n *Neis) Schedule(c *gin.Context) error {
	var req types.ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "연도와 월을 올바르게 입력하세요.")
	}
	now := time.Now()
	if req.Year == "" {
		req.Year = now.Format("2006")
	}
	if req.Month == "" {
		req.Month = now.Format("01")
	}

	month, err := strconv.Atoi(req.Month)
	if !isDigits(req.Year, 4) || err != nil || month < 1 || month > 12 {
		return response.NewError(http.StatusBadRequest, "연도와 월을 올바르게 입력하세요.")
	}

	c.JSON(http.StatusOK, n.NeisService.FetchSchedule(c.Request.Context(), req.Year, fmt.Sprintf("%02d", month)))
	return nil
}

// Timetable 오늘 시간표
func (n *Neis) Timetable(c *gin.Context) error {
	var req types.TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "학년과 반을 올바르게 입력하세요.")
	}
	if req.Grade == "" || req.Class == "" {
		return response.NewError(http.StatusBadRequest, "학년과 반을 입력하세요.")
	}

	date := time.Now().Format("20060102")
	c.JSON(http.StatusOK, n.NeisService.FetchTimetable(c.Request.Context(), date, req.Grade.String(), req.Class.String()))
	return nil
}
