package expression_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/karupanerura/lettercalc/internal/expression"
	"github.com/karupanerura/lettercalc/internal/types"
)

func TestParseExpr(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source                string
		expected              int64
		expectToBeParseErr    bool
		expectedErrorLevel    types.ErrorLevel
		expectToBeEvaluateErr bool
		debug                 bool
	}{
		{
			source:             "",
			expectToBeParseErr: true,
			expectedErrorLevel: types.ParseErrorLevel,
		},
		{
			source:             "a",
			expectToBeParseErr: true,
			expectedErrorLevel: types.ParseErrorLevel,
		},
		{
			source:             "b",
			expectToBeParseErr: true,
			expectedErrorLevel: types.ParseErrorLevel,
		},
		{
			source:             "c",
			expectToBeParseErr: true,
			expectedErrorLevel: types.ParseErrorLevel,
		},
		{
			source:             "d",
			expectToBeParseErr: true,
			expectedErrorLevel: types.ParseErrorLevel,
		},
		{
			source:             "ef",
			expectToBeParseErr: true,
		},
		{
			source:             "e3a2",
			expectToBeParseErr: true,
		},
		{
			source:             "ee3a2f",
			expectToBeParseErr: true,
		},
		{
			source:             "3f",
			expectToBeParseErr: true,
		},
		{
			source:             "f3",
			expectToBeParseErr: true,
		},
		{
			source:             "3a",
			expectToBeParseErr: true,
		},
		{
			source:             "3aa2",
			expectToBeParseErr: true,
		},
		{
			source:             "3 5",
			expectToBeParseErr: true,
		},
		{
			source:             "3g2",
			expectToBeParseErr: true,
			expectedErrorLevel: types.LexiconErrorLevel,
		},
		{
			source:             "9223372036854775808",
			expectToBeParseErr: true,
			expectedErrorLevel: types.LexiconErrorLevel,
		},
		{
			source:   "7",
			expected: 7,
		},
		{
			source:   "0",
			expected: 0,
		},
		{
			source:   "b1",
			expected: -1,
		},
		{
			source:   "bb5",
			expected: 5,
		},
		{
			source:   "beb5f",
			expected: 5,
		},
		{
			source:   "be3a2f",
			expected: -5,
		},
		{
			source:   "e7f",
			expected: 7,
		},
		{
			source:   "ee7ff",
			expected: 7,
		},
		{
			source:   "3a2c4",
			expected: 20,
		},
		{
			source:   "3c4a2",
			expected: 14,
		},
		{
			source:   "e2a3fc4",
			expected: 20,
		},
		{
			source:   " 3 a 2 c 4 ",
			expected: 20,
		},
		{
			source:   "32a2d2",
			expected: 17,
		},
		{
			source:   "500a10b66c32",
			expected: 14208,
		},
		{
			source:   "3ae4c66fb32",
			expected: 235,
		},
		{
			source:   "3c4d2aee2a4c41fc4f",
			expected: 990,
		},
		{
			source:   "9223372036854775807",
			expected: 9223372036854775807,
		},
		{
			source:   "9223372036854775807a1",
			expected: -9223372036854775808,
		},
		{
			source:                "1d0",
			expectToBeEvaluateErr: true,
		},
		{
			source:                "be3d0f",
			expectToBeEvaluateErr: true,
		},
		{
			source:                "1de3b3f",
			expectToBeEvaluateErr: true,
		},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			parseExpr := expression.ParseExpr
			if tt.debug {
				parseExpr = expression.ParseExprWithDebugOutput
			}

			expr, err := parseExpr(tt.source)
			if err != nil {
				if tt.expectToBeParseErr {
					t.Logf("expected parse error: %v", err)

					var syntaxErr *types.SyntaxError
					if !errors.As(err, &syntaxErr) {
						t.Fatalf("unknown error: %v", err)
					}
					if tt.expectedErrorLevel != "" && syntaxErr.Level != tt.expectedErrorLevel {
						t.Errorf("expect to %s but got %s", tt.expectedErrorLevel, syntaxErr.Level)
					}
					return
				}
				t.Fatal(err)
			}
			if tt.expectToBeParseErr {
				t.Error("should be parse error")
				return
			}

			ret, err := expr.Evaluate()
			if err != nil {
				if tt.expectToBeEvaluateErr {
					t.Logf("expected evaluate error: %v", err)
					return // ok
				}
				t.Fatal(err)
			}
			if tt.expectToBeEvaluateErr {
				t.Error("should be evaluate error")
				return
			}

			if ret != tt.expected {
				t.Errorf("expect to %d but got %d", tt.expected, ret)
			}
		})
	}
}

func TestParseExprErrorMessage(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source   string
		expected string
	}{
		{
			source:   "",
			expected: "Parse Error Unexpected token End",
		},
		{
			source:   "f",
			expected: "Parse Error Unexpected token RightParen",
		},
		{
			source:   "a",
			expected: "Parse Error Unexpected token Plus",
		},
		{
			source:   "3a",
			expected: "Parse Error Unexpected token End",
		},
		{
			source:   "3aa2",
			expected: "Parse Error Unexpected token Plus",
		},
		{
			source:   "e3a2",
			expected: "Parse Error Expected RightParen but actual End",
		},
		{
			source:   "3 5",
			expected: "Parse Error Expected End but actual Number(5)",
		},
		{
			source:   "3f",
			expected: "Parse Error Expected End but actual RightParen",
		},
		{
			source:   "3g2",
			expected: `Lexicon Error unrecognized character 'g' at 1`,
		},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			_, err := expression.ParseExpr(tt.source)
			if err == nil {
				t.Fatal("should be an error")
			}
			if got := err.Error(); got != tt.expected {
				t.Errorf("expect to %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestParseExprDeepNesting(t *testing.T) {
	t.Parallel()

	source := strings.Repeat("e", 20000) + "1" + strings.Repeat("f", 20000)
	_, err := expression.ParseExpr(source)
	if err == nil {
		t.Fatal("should be parse error")
	}

	var syntaxErr *types.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("unknown error: %v", err)
	}
	if syntaxErr.Level != types.ParseErrorLevel {
		t.Errorf("expect to %s but got %s", types.ParseErrorLevel, syntaxErr.Level)
	}

	expr, err := expression.ParseExpr(strings.Repeat("e", 100) + "1" + strings.Repeat("f", 100))
	if err != nil {
		t.Fatal(err)
	}
	ret, err := expr.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if ret != 1 {
		t.Errorf("expect to 1 but got %d", ret)
	}
}

func TestParseExprLongFlatChain(t *testing.T) {
	t.Parallel()

	expr, err := expression.ParseExpr("1" + strings.Repeat("a1", 20000))
	if err != nil {
		t.Fatal(err)
	}

	ret, err := expr.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if ret != 20001 {
		t.Errorf("expect to 20001 but got %d", ret)
	}
}

func FuzzParseExpr(f *testing.F) {
	f.Fuzz(func(t *testing.T, source string) {
		_, err := expression.ParseExpr(source)
		if err != nil {
			t.Logf("INVALID: %q (%v)", source, err)
			return
		}

		t.Logf("PASS: %q", source)
	})
}
