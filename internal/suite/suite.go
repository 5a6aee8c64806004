package suite

import (
	"github.com/karupanerura/lettercalc/internal/expression"
	"golang.org/x/sync/errgroup"
)

type Suite struct {
	Concurrency int
	Cases       []*Case
}

type Case struct {
	Name       string
	Expression string
	Expect     *int64
}

func (c *Case) run() Result {
	result := Result{
		Name:       c.Name,
		Expression: c.Expression,
		Expect:     c.Expect,
	}

	ret, err := expression.EvaluateExpr(c.Expression)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Result = &ret
	result.Pass = c.Expect == nil || *c.Expect == ret
	return result
}

type Result struct {
	Name       string `json:"name,omitempty"`
	Expression string `json:"expression"`
	Result     *int64 `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	Expect     *int64 `json:"expect,omitempty"`
	Pass       bool   `json:"pass"`
}

type Report struct {
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

func (s *Suite) Run(concurrency int) *Report {
	if concurrency == 0 {
		concurrency = s.Concurrency
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(s.Cases))

	eg := errgroup.Group{}
	eg.SetLimit(concurrency)
	for i, c := range s.Cases {
		i := i
		c := c
		eg.Go(func() error {
			results[i] = c.run()
			return nil
		})
	}
	_ = eg.Wait() // the closures never return an error

	report := &Report{
		Results: results,
	}
	for _, result := range results {
		if result.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	return report
}
