package expression

import (
	"fmt"
	"strconv"

	"github.com/karupanerura/lettercalc/internal/types"
)

type lexer struct {
	source string
	index  int
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		index:  0,
	}
}

func tokenize(source string) ([]token, error) {
	return newLexer(source).tokenize()
}

func (l *lexer) tokenize() ([]token, error) {
	var tokens []token
	for l.index != len(l.source) {
		switch c := l.source[l.index]; c {
		case ' ', '\t', '\n':
			l.index++ // just skip white spaces
		case 'a', 'b', 'c', 'd', 'e', 'f':
			tokens = append(tokens, token{
				rangeToken: rangeToken{beginsPos: l.index, endsPos: l.index + 1},
				kind:       letterTokenKindMap[c],
			})
			l.index++
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			tok, err := l.consumeNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, types.NewLexiconError(fmt.Errorf("unrecognized character %q at %d", c, l.index))
		}
	}

	tokens = append(tokens, token{
		rangeToken: rangeToken{beginsPos: len(l.source), endsPos: len(l.source)},
		kind:       endToken,
	})
	return tokens, nil
}

func (l *lexer) consumeNumber() (token, error) {
	beginsPos := l.index
	for l.index != len(l.source) && '0' <= l.source[l.index] && l.source[l.index] <= '9' {
		l.index++
	}

	v, err := strconv.ParseInt(l.source[beginsPos:l.index], 10, 64)
	if err != nil {
		return token{}, types.NewLexiconError(fmt.Errorf("invalid integer %s at %d: %w", l.source[beginsPos:l.index], beginsPos, err))
	}

	return token{
		rangeToken: rangeToken{beginsPos: beginsPos, endsPos: l.index},
		kind:       numberToken,
		value:      v,
	}, nil
}
