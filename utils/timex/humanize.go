// File: humanize.go
// Title: Humanized Relative Times
// Description: English relative time phrases such as "3 days ago".
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package timex

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Humanize describes t relative to now: "3 days ago", "2 hours from now".
func Humanize(t time.Time) string {
	return humanize.RelTime(t, now(), "ago", "from now")
}

// HumanizeBetween describes a relative to b: "3 days earlier", "1 hour later".
func HumanizeBetween(a, b time.Time) string {
	return humanize.RelTime(a, b, "earlier", "later")
}
