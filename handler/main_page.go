package handler

import (
	"net/http"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/context"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/response"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"

	"github.com/gin-gonic/gin"
)

type MainPage struct{}

func (m *MainPage) RegisterRouter(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/main")
	})
	r.GET("/main", context.Wrap(m.Main))
}

// Main 앱 첫 화면 메뉴
func (m *MainPage) Main(c *gin.Context) error {
	response.Success(c, http.StatusOK, &types.MainPageResponse{
		Result: types.Ok("메인페이지 정보 불러오기 성공"),
		Icons: []types.MenuLink{
			{Name: "프로필", Route: "/profile"},
			{Name: "급식", Route: "/meal"},
			{Name: "시간표", Route: "/timetable"},
			{Name: "학사일정", Route: "/schedule"},
		},
		Sections: []types.MenuLink{
			{Name: "게시물", Route: "/posts"},
		},
	})
	return nil
}
