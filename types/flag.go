package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Flag true/false, 1/0, "yes"/"on" 처럼 여러 형태로 오는 불리언
type Flag bool

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = false
	case bytes.Equal(b, []byte("true")):
		*f = true
	case bytes.Equal(b, []byte("false")):
		*f = false
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flag(parseFlag(s))
	default:
		n, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		*f = n != 0
	}
	return nil
}

// UnmarshalParam form / multipart 값
func (f *Flag) UnmarshalParam(param string) error {
	*f = Flag(parseFlag(param))
	return nil
}

// Label 학년, 반처럼 숫자나 문자열로 오는 값
type Label string

func (l *Label) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Label(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*l = Label(n.String())
	return nil
}

func (l Label) String() string {
	return string(l)
}
