// File: date.go
// Title: Random Points in Time
// Description: Instants and civil date times strictly between two bounds,
//              where a missing bound means now.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package randx

import (
	"time"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/timex"
	"github.com/labzen/tool/utils/tuple"
)

var now = time.Now

// DateBetween returns an instant strictly between the bounds of span.
// A nil bound is replaced by now; both nil, or bounds that leave no
// nanosecond between them, is a validation error.
func DateBetween(span tuple.Pair[*time.Time, *time.Time]) (time.Time, error) {
	return dateBetween(global, "DateBetween", span)
}

// DateBetween is the generator bound variant of the package function DateBetween
func (g *Generator) DateBetween(span tuple.Pair[*time.Time, *time.Time]) (time.Time, error) {
	return dateBetween(g, "DateBetween", span)
}

// LocalDateTimeBetween returns a civil date time strictly between the bounds
// of span, on the same terms as DateBetween. A nil bound is the current wall
// clock reading in the system default zone.
func LocalDateTimeBetween(span tuple.Pair[*timex.LocalDateTime, *timex.LocalDateTime]) (timex.LocalDateTime, error) {
	return localBetween(global, span)
}

// LocalDateTimeBetween is the generator bound variant of the package function
func (g *Generator) LocalDateTimeBetween(span tuple.Pair[*timex.LocalDateTime, *timex.LocalDateTime]) (timex.LocalDateTime, error) {
	return localBetween(g, span)
}

func dateBetween(src source, op string, span tuple.Pair[*time.Time, *time.Time]) (time.Time, error) {
	from, to := span.Values()
	if from == nil && to == nil {
		return time.Time{}, lzerrors.ValidationFailed(lzerrors.ModuleRandx, op, "at least one bound is required", nil)
	}

	current := now()
	start, end := current, current
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	offset, err := offsetWithin(src, op, end.Sub(start))
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(offset), nil
}

func localBetween(src source, span tuple.Pair[*timex.LocalDateTime, *timex.LocalDateTime]) (timex.LocalDateTime, error) {
	const op = "LocalDateTimeBetween"

	from, to := span.Values()
	if from == nil && to == nil {
		return timex.LocalDateTime{}, lzerrors.ValidationFailed(lzerrors.ModuleRandx, op, "at least one bound is required", nil)
	}

	current := timex.ToLocalDateTime(now())
	start, end := current, current
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	offset, err := offsetWithin(src, op, end.Sub(start))
	if err != nil {
		return timex.LocalDateTime{}, err
	}
	return start.Add(offset), nil
}

// offsetWithin picks a duration in (0, span)
func offsetWithin(src source, op string, span time.Duration) (time.Duration, error) {
	if span <= 1 {
		return 0, lzerrors.ValidationFailed(lzerrors.ModuleRandx, op, "start bound must be before end bound",
			map[string]interface{}{"span": span.String()})
	}
	return time.Duration(1 + src.Uint64N(uint64(span-1))), nil
}
