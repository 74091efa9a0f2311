package server

import (
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/handler"
)

type Handlers struct {
	Auth            *handler.Auth
	MainPage        *handler.MainPage
	Neis            *handler.Neis
	Post            *handler.Post
	CommentsHandler *handler.CommentsHandler
}
