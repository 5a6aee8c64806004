package expression

import "fmt"

type operatorKind int

const (
	addOperator operatorKind = iota
	subtractOperator
	multiplyOperator
	divideOperator
	negateOperator
)

func (k operatorKind) String() string {
	switch k {
	case addOperator:
		return "Add"
	case subtractOperator:
		return "Subtract"
	case multiplyOperator:
		return "Multiply"
	case divideOperator:
		return "Divide"
	case negateOperator:
		return "Negate"
	default:
		panic(fmt.Sprintf("should not reach here: unknown operator kind %d", int(k)))
	}
}

var binaryOperatorTokenKindMap = map[tokenKind]operatorKind{
	plusToken:  addOperator,
	minusToken: subtractOperator,
	starToken:  multiplyOperator,
	slashToken: divideOperator,
}

func binaryOperatorFromToken(t token) (operatorKind, bool) {
	op, ok := binaryOperatorTokenKindMap[t.kind]
	return op, ok
}

var operatorSymbolMap = map[operatorKind]string{
	addOperator:      "+",
	subtractOperator: "-",
	multiplyOperator: "*",
	divideOperator:   "/",
	negateOperator:   "-",
}
