package types

import (
	"strings"

	"github.com/goccy/go-json"
)

type ErrorTag string

const (
	ZeroDivisionErrorTag ErrorTag = "ZeroDivisionError"
)

type Exception interface {
	error
	Exception() any
}

type Error struct {
	Tag ErrorTag
	Err error
}

var _ Exception = (*Error)(nil)

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Exception() any {
	o := map[string]any{
		"tag": e.Tag,
	}
	if e.Err != nil {
		o["message"] = e.Err.Error()
	}
	return o
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Exception())
}
