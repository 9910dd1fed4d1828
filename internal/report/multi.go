package report

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

type multi []snake.Reporter

// Multi fans a result out to every reporter in order. All reporters are
// called even if one fails; the errors are joined.
func Multi(reporters ...snake.Reporter) snake.Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) Report(ctx context.Context, r snake.Result) error {
	var errs []error
	for _, rep := range m {
		if err := rep.Report(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
