package expression

func (e *Expr) Evaluate() (int64, error) {
	return e.execute()
}

func EvaluateExpr(source string) (int64, error) {
	expr, err := ParseExpr(source)
	if err != nil {
		return 0, err
	}
	return expr.Evaluate()
}
