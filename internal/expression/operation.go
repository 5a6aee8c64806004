package expression

import (
	"fmt"

	"github.com/karupanerura/lettercalc/internal/types"
)

type operation interface {
	execute() (int64, error)
}

type int64LiteralOperation struct {
	value int64
}

func (s *int64LiteralOperation) execute() (int64, error) {
	return s.value, nil
}

type calculateUnaryOperation struct {
	operator operatorKind
	value    operation
}

func (s *calculateUnaryOperation) execute() (int64, error) {
	value, err := s.value.execute()
	if err != nil {
		return 0, fmt.Errorf("value of unary operator %q: %w", s.operator, err)
	}

	switch s.operator {
	case negateOperator:
		return -value, nil
	default:
		panic(fmt.Sprintf("should not reach here: unary operator %s", s.operator))
	}
}

type calculateBinaryOperation struct {
	operator operatorKind
	left     operation
	right    operation
}

func (s *calculateBinaryOperation) execute() (int64, error) {
	left, err := s.left.execute()
	if err != nil {
		return 0, fmt.Errorf("left of operator %q: %w", s.operator, err)
	}

	right, err := s.right.execute()
	if err != nil {
		return 0, fmt.Errorf("right of operator %q: %w", s.operator, err)
	}

	switch s.operator {
	case addOperator:
		return left + right, nil
	case subtractOperator:
		return left - right, nil
	case multiplyOperator:
		return left * right, nil
	case divideOperator:
		if right == 0 {
			return 0, &types.Error{
				Tag: types.ZeroDivisionErrorTag,
				Err: fmt.Errorf("division by zero: %d / %d", left, right),
			}
		}
		return left / right, nil
	default:
		panic(fmt.Sprintf("should not reach here: binary operator %s", s.operator))
	}
}
