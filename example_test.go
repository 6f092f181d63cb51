package fracindex_test

import (
	"fmt"

	"github.com/ivarley/fracindex"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAppend
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build up a sequence purely by appending: the empty sequence seeds at the
//	alphabet midpoint, ordinary values increment in place, and the maximal
//	symbol rolls over by extending mid-table.
//
// Use case:
//
//	Initial load of an already-ordered list (each row gets the next key).
func ExampleAppend() {
	fmt.Println(fracindex.Append(""))  // empty sequence
	fmt.Println(fracindex.Append("V")) // plain increment
	fmt.Println(fracindex.Append("9")) // digits roll into uppercase
	fmt.Println(fracindex.Append("z")) // maximal symbol extends instead
	// Output:
	// V
	// W
	// A
	// zV
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBetween
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Insert between two existing keys. With numeric room the result stays the
//	same length; between adjacent symbols it grows by one, keeping the lower
//	bound as prefix.
//
// Use case:
//
//	Drag-and-drop reordering: compute one key, write one row.
func ExampleBetween() {
	mid, _ := fracindex.Between("V", "X")
	fmt.Println(mid)

	tight, _ := fracindex.Between("V", "W")
	fmt.Println(tight)

	_, err := fracindex.Between("z", "A")
	fmt.Println(err)
	// Output:
	// W
	// VV
	// fracindex: before must sort strictly before after: "z" >= "A"
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNBetween
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Paste five items into an empty list in one shot. Only the first key is
//	found by bisection; the rest extend from their predecessor, so key
//	length does not compound with batch size.
func ExampleNBetween() {
	batch, _ := fracindex.NBetween("", "", 5)
	fmt.Println(batch)
	// Output:
	// [V W X Y Z]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleValid
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Guard externally supplied keys before trusting them: empty strings and
//	out-of-alphabet bytes are rejected, never raised on.
func ExampleValid() {
	fmt.Println(fracindex.Valid("AbC123"))
	fmt.Println(fracindex.Valid("V-W"))
	fmt.Println(fracindex.Valid(""))
	// Output:
	// true
	// false
	// false
}
