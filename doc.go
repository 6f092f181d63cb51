// Package fracindex generates totally-ordered, sortable string keys
// ("positions") for items in an ordered collection, so that a new item can
// always be inserted between any two existing items — or appended — without
// renumbering anything else.
//
// What
//
//   - Append(last) extends a sequence at the end: the result always sorts
//     strictly after last under plain byte-order string comparison.
//   - Between(before, after) inserts anywhere: the result sorts strictly
//     between the two bounds, where an empty bound means "open end".
//   - NBetween(before, after, n) produces n consecutive positions between
//     two anchors with small, non-compounding key growth.
//   - Valid(value) reports whether a string is a well-formed position.
//   - Every operation is a pure function: no state, no I/O, no randomness.
//
// Why
//
//   - Reordering a list by renumbering rows is O(list) writes per move;
//     fractional indexing makes every insert, append, and move a single
//     key computation and a single write.
//   - The keys are opaque strings, so any store that can sort text with a
//     byte-order collation can keep the list ordered — no schema beyond one
//     TEXT column.
//
// Ordering model
//
//	Positions are non-empty strings over a fixed 62-symbol alphabet
//	(digits, then uppercase, then lowercase — so byte order already matches
//	numeral order). Their only meaningful property is their relative order
//	under byte-wise comparison. An empty sequence starts at "V", the
//	alphabet's midpoint, leaving symmetric room on both sides.
//
// Storage contract
//
//	Positions MUST be stored and sorted under a byte-order ("binary" / "C")
//	collation. Locale-aware or case-insensitive collations reorder results
//	incorrectly, because correctness depends on digits sorting before
//	uppercase before lowercase at the raw byte level. Use Compare (or Go's
//	native string operators) in memory, and a BINARY-collated TEXT column
//	in SQL.
//
// Concurrency
//
//	All operations are referentially transparent and safe for unlimited
//	concurrent use. The hazard lives in the caller's store: two writers that
//	read the same neighbor pair and both insert between them each get a
//	valid key, but their relative order is whichever happens to sort first.
//	Callers needing strict ordering under concurrent writers must serialize
//	the read-neighbors/write-position step themselves.
//
// Complexity
//
//   - Time:   O(len(before) + len(after)) per operation.
//   - Memory: O(result length); no allocation beyond the returned string.
//
// Usage
//
//	pos := fracindex.Append("")                 // "V" — first item
//	pos = fracindex.Append(pos)                 // "W"
//	mid, err := fracindex.Between("V", "W")     // "VV", sorts between
//	if err != nil {
//	    // ErrUnordered: bounds were reversed or equal (caller bug)
//	}
//	_ = mid
//
// Errors
//
//   - ErrUnordered — Between/NBetween with both bounds present and
//     before >= after. Signals a caller bug (stale neighbor read), never a
//     recoverable runtime condition.
//   - ErrBadCount  — NBetween with a negative count.
package fracindex
