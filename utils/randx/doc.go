// Package randx draws random numbers, strings, bytes, elements, colors,
// points in time and UUIDs.
//
// Package level functions use the concurrency safe global source of
// math/rand/v2. A Generator wraps its own *rand.Rand so that a fixed seed
// reproduces the same sequence:
//
//	g := randx.NewGenerator(1, 2)
//	n, err := g.Int(0, 100, randx.Even)
//	code := g.String(6, randx.Numbers)
//
// None of the values are suitable for secrets; use crypto/rand for those.
package randx
