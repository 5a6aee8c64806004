package expression

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/karupanerura/lettercalc/internal/types"
)

const maxNestingDepth = 10000

var parserDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("LETTERCALC_EXPRESSION_DEBUG")); v && err == nil {
		parserDebugLog = true
	}
}

type parser struct {
	source string
	tokens []token
	index  int
	depth  int
	debug  bool
}

func ParseExpr(source string) (*Expr, error) {
	p := &parser{source: source, debug: parserDebugLog}
	return p.parse()
}

func ParseExprWithDebugOutput(source string) (*Expr, error) {
	p := &parser{source: source, debug: true}
	return p.parse()
}

func (p *parser) parse() (*Expr, error) {
	tokens, err := tokenize(p.source)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	if p.debug {
		log.Println("tokens: ", renderTokens(tokens))
	}

	op, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.assertNext(endToken); err != nil {
		return nil, err
	}

	if p.debug {
		pp.Println(p.source)
		pp.Println(op)
		log.Println(renderOperation(op))
	}

	return &Expr{
		Source:    p.source,
		operation: op,
	}, nil
}

func (p *parser) peek() token {
	if p.index == len(p.tokens) {
		panic(fmt.Sprintf("should not reach here: unterminated token sequence: source=%s", p.source))
	}
	return p.tokens[p.index]
}

func (p *parser) consume() (token, bool) {
	if p.index == len(p.tokens) {
		return token{}, false
	}

	tok := p.tokens[p.index]
	p.index++
	return tok, true
}

func (p *parser) assertNext(kind tokenKind) error {
	tok, ok := p.consume()
	if !ok {
		return types.NewParseError(errors.New("End of input unexpected"))
	}
	if tok.kind != kind {
		return types.NewParseError(fmt.Errorf("Expected %s but actual %s", kind, tok))
	}
	return nil
}

func (p *parser) parseExpression() (operation, error) {
	left, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryOperatorFromToken(p.peek())
		if !ok {
			return left, nil
		}
		tok, _ := p.consume()
		if p.debug {
			log.Println("binary operator token: ", tok.String())
		}

		right, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}

		left = &calculateBinaryOperation{
			operator: op,
			left:     left,
			right:    right,
		}
	}
}

func (p *parser) parsePrimaryExpression() (operation, error) {
	if p.depth == maxNestingDepth {
		return nil, types.NewParseError(fmt.Errorf("too deeply nested expression: depth=%d", p.depth))
	}
	p.depth++
	defer func() { p.depth-- }()

	tok, ok := p.consume()
	if !ok {
		return nil, types.NewParseError(errors.New("End of input unexpected"))
	}
	if p.debug {
		log.Println("primary token: ", tok.String())
	}

	switch tok.kind {
	case numberToken:
		return &int64LiteralOperation{value: tok.value}, nil

	case leftParenToken:
		op, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.assertNext(rightParenToken); err != nil {
			return nil, err
		}
		return op, nil

	case minusToken:
		value, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}
		return &calculateUnaryOperation{
			operator: negateOperator,
			value:    value,
		}, nil

	default:
		return nil, p.createUnexpectedTokenError(tok)
	}
}

func (p *parser) createUnexpectedTokenError(t token) error {
	return types.NewParseError(fmt.Errorf("Unexpected token %s", t))
}

func renderTokens(tokens []token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case numberToken:
			b.WriteString(strconv.FormatInt(tok.value, 10))
		case endToken:
			// no letter represents it
		default:
			b.WriteByte(tokenKindLetterMap[tok.kind])
		}
	}
	return b.String()
}

func renderOperation(op operation) string {
	switch o := op.(type) {
	case *int64LiteralOperation:
		return strconv.FormatInt(o.value, 10)

	case *calculateUnaryOperation:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(operatorSymbolMap[o.operator])
		b.WriteString(renderOperation(o.value))
		b.WriteByte(')')
		return b.String()

	case *calculateBinaryOperation:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(renderOperation(o.left))
		b.WriteByte(' ')
		b.WriteString(operatorSymbolMap[o.operator])
		b.WriteByte(' ')
		b.WriteString(renderOperation(o.right))
		b.WriteByte(')')
		return b.String()

	default:
		panic(fmt.Sprintf("should not reach here: unknown operation %T", op))
	}
}
