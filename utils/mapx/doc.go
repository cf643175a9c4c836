// Package mapx provides generic helpers for Go maps. Entries are exposed as
// tuple.Pair values so they compose with the rest of the labzen tool.
//
//	for _, e := range mapx.SortedEntries(counts) {
//		fmt.Println(e.First(), e.Second())
//	}
package mapx
