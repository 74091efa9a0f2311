package config

import "time"

// Session 세션 설정
type Session struct {
	// Key 쿠키 서명 키
	Key        string        `json:"key" yaml:"key"`
	CookieName string        `json:"cookie_name" yaml:"cookie_name"`
	KeyPrefix  string        `json:"key_prefix" yaml:"key_prefix"`
	Permanent  bool          `json:"permanent" yaml:"permanent"`
	UseSigner  bool          `json:"use_signer" yaml:"use_signer"`
	Lifetime   time.Duration `json:"lifetime" yaml:"lifetime"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

func (s *Session) applyDefaults() {
	if s.CookieName == "" {
		s.CookieName = "session"
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "session:"
	}
	if s.Lifetime == 0 {
		s.Lifetime = 31 * 24 * time.Hour
	}
}
