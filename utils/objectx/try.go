// File: try.go
// Title: Ordered Fallback Attempts
// Description: Runs alternative attempts in order until one succeeds.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package objectx

import (
	"errors"

	lzerrors "github.com/labzen/tool/core/errors"
)

// TryEach feeds input to each attempt in order and returns the result of the
// first one that succeeds. When every attempt fails the errors are joined in
// attempt order.
//
//	t, err := objectx.TryEach("2022-04-01",
//	    func(s string) (time.Time, error) { return time.Parse(time.RFC3339, s) },
//	    func(s string) (time.Time, error) { return time.Parse(time.DateOnly, s) },
//	)
func TryEach[I, O any](input I, attempts ...func(I) (O, error)) (O, error) {
	var zero O
	if len(attempts) == 0 {
		return zero, lzerrors.InvalidInput(lzerrors.ModuleObjectx, "TryEach", "no attempts given", input)
	}

	errs := make([]error, 0, len(attempts))
	for _, attempt := range attempts {
		out, err := attempt(input)
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
	}
	return zero, errors.Join(errs...)
}
