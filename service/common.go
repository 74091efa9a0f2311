package service

import (
	"context"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/errorx"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/types"
)

const (
	MsgLoginRequired = "로그인이 필요합니다."
	MsgStaleSession  = "유효하지 않은 세션입니다. 다시 로그인해 주세요."
	MsgPostNotFound  = "게시물을 찾을 수 없습니다."
)

// requireStudent 학생 세션이 있고 계정이 아직 존재하는지 확인한다
func requireStudent(ctx context.Context, students *dao.StudentDAO, studentID string) error {
	if studentID == "" {
		return errorx.Auth(MsgLoginRequired)
	}
	ok, err := students.Exists(ctx, studentID)
	if err != nil {
		return errorx.Internal(err)
	}
	if !ok {
		return errorx.Auth(MsgStaleSession)
	}
	return nil
}

// author 익명이면 학번은 숨기고 이름은 "익명"
func author(studentID string, anonymous bool, names map[string]string) (*string, *string) {
	if anonymous {
		name := types.AnonymousName
		return nil, &name
	}
	id := studentID
	name, ok := names[studentID]
	if !ok {
		return &id, nil
	}
	return &id, &name
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(types.TimeLayout)
}
