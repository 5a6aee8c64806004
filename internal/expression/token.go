package expression

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

type tokenKind int

const (
	plusToken tokenKind = iota
	minusToken
	starToken
	slashToken
	leftParenToken
	rightParenToken
	numberToken
	endToken
)

func (k tokenKind) String() string {
	switch k {
	case plusToken:
		return "Plus"
	case minusToken:
		return "Minus"
	case starToken:
		return "Star"
	case slashToken:
		return "Slash"
	case leftParenToken:
		return "LeftParen"
	case rightParenToken:
		return "RightParen"
	case numberToken:
		return "Number"
	case endToken:
		return "End"
	default:
		panic(fmt.Sprintf("should not reach here: unknown token kind %d", int(k)))
	}
}

var tokenKindLetterMap = map[tokenKind]byte{
	plusToken:       'a',
	minusToken:      'b',
	starToken:       'c',
	slashToken:      'd',
	leftParenToken:  'e',
	rightParenToken: 'f',
}

var letterTokenKindMap = lo.Invert(tokenKindLetterMap)

type rangeToken struct {
	beginsPos, endsPos int
}

type token struct {
	rangeToken
	kind  tokenKind
	value int64
}

func (t token) String() string {
	if t.kind == numberToken {
		return "Number(" + strconv.FormatInt(t.value, 10) + ")"
	}
	return t.kind.String()
}
