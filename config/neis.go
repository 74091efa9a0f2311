package config

import "time"

// Neis 나이스 교육정보 개방 포털 API
type Neis struct {
	Key          string        `json:"key" yaml:"key"`
	MealURL      string        `json:"meal_url" yaml:"meal_url"`
	ScheduleURL  string        `json:"schedule_url" yaml:"schedule_url"`
	TimetableURL string        `json:"timetable_url" yaml:"timetable_url"`
	AtptCode     string        `json:"atpt_code" yaml:"atpt_code"`
	SchoolCode   string        `json:"school_code" yaml:"school_code"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

func (n *Neis) applyDefaults() {
	if n.MealURL == "" {
		n.MealURL = "https://open.neis.go.kr/hub/mealServiceDietInfo"
	}
	if n.ScheduleURL == "" {
		n.ScheduleURL = "https://open.neis.go.kr/hub/SchoolSchedule"
	}
	if n.TimetableURL == "" {
		n.TimetableURL = "https://open.neis.go.kr/hub/hisTimetable"
	}
	if n.Timeout == 0 {
		n.Timeout = 5 * time.Second
	}
}

func ProvideNeisConfig(cfg *Config) *Neis {
	return cfg.Neis
}

func ProvideUploadConfig(cfg *Config) *Upload {
	return cfg.Upload
}

func ProvideSessionConfig(cfg *Config) *Session {
	return cfg.Session
}
