package expression

type Expr struct {
	Source string
	operation
}

func (e *Expr) String() string {
	return e.Source
}
