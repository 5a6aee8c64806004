package types

import (
	"strings"

	"github.com/goccy/go-json"
)

type ErrorLevel string

const (
	LexiconErrorLevel ErrorLevel = "Lexicon"
	ParseErrorLevel   ErrorLevel = "Parse"
)

type SyntaxError struct {
	Level ErrorLevel
	Err   error
}

var _ Exception = (*SyntaxError)(nil)

func NewLexiconError(err error) *SyntaxError {
	return &SyntaxError{Level: LexiconErrorLevel, Err: err}
}

func NewParseError(err error) *SyntaxError {
	return &SyntaxError{Level: ParseErrorLevel, Err: err}
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Level))
	b.WriteString(" Error ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Exception() any {
	return map[string]any{
		"level":   e.Level,
		"message": e.Err.Error(),
	}
}

func (e *SyntaxError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Exception())
}
