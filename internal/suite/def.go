package suite

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	reflect "github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
)

type suiteDef struct {
	Concurrency int             `json:"concurrency"`
	Cases       []*suiteCaseDef `json:"cases"`
}

func (d *suiteDef) compile() (*Suite, error) {
	if len(d.Cases) == 0 {
		return nil, fmt.Errorf("empty cases")
	}
	if d.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency: must not be negative")
	}

	s := &Suite{
		Concurrency: d.Concurrency,
		Cases:       make([]*Case, len(d.Cases)),
	}
	for i, caseDef := range d.Cases {
		c, err := caseDef.compile()
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		s.Cases[i] = c
	}

	return s, nil
}

type suiteCaseDef struct {
	expr   string         `json:"-"`
	fields map[string]any `json:"-"`
}

var _ json.Unmarshaler = (*suiteCaseDef)(nil)

func (d *suiteCaseDef) UnmarshalJSON(b []byte) error {
	var v any
	if err := unmarshalJSONUseNumber(b, &v); err != nil {
		return fmt.Errorf("unexpected suite case structure: %w", err)
	}

	switch vv := v.(type) {
	case string:
		d.expr = vv
		return nil

	case map[string]any:
		d.fields = vv
		return nil

	default:
		return fmt.Errorf("invalid suite case structure: %s", string(b))
	}
}

type caseFieldsDef struct {
	Name   string `mapstructure:"name"`
	Expr   string `mapstructure:"expr"`
	Expect any    `mapstructure:"expect"`
}

func (d *suiteCaseDef) compile() (*Case, error) {
	if d.fields == nil {
		return &Case{Expression: d.expr}, nil
	}

	var decoded caseFieldsDef
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &decoded,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("mapstructure.NewDecoder: %w", err)
	}
	if err = decoder.Decode(d.fields); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}
	if decoded.Expr == "" {
		return nil, fmt.Errorf("expr: required")
	}

	c := &Case{
		Name:       decoded.Name,
		Expression: decoded.Expr,
	}
	if decoded.Expect != nil {
		v := decoded.Expect
		if n, ok := v.(json.Number); ok {
			v, err = decodeJSONNumber(n)
			if err != nil {
				return nil, fmt.Errorf("expect: invalid number: %w", err)
			}
		}

		expect, ok := v.(int64)
		if !ok {
			return nil, fmt.Errorf("expect: must be an integer but actual %s", reflect.TypeOf(v).Kind())
		}
		c.Expect = &expect
	}

	return c, nil
}

func unmarshalJSONUseNumber(b []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	return decoder.Decode(v)
}

func decodeJSONNumber(n json.Number) (any, error) {
	if i := strings.IndexByte(n.String(), '.'); i == -1 {
		if n, err := n.Int64(); errors.Is(err, strconv.ErrSyntax) {
			// retry parse as float64
		} else {
			return n, err
		}
	}
	return n.Float64()
}
