// Package primitive provides growable, array-backed lists of fixed-width
// numeric values.
//
// A MutableList stores its elements unboxed in a single contiguous buffer
// and grows geometrically, so appending n elements costs O(n) overall.
// The read-only capability is expressed as the List interface: handing a
// *MutableList to code that accepts a List gives that code no way to
// mutate the underlying storage.
//
// # Basic Usage
//
//	l := primitive.LongListOf(3, 1, 2)
//	l.Add(4)
//	l.Sort()
//	fmt.Println(l) // [1, 2, 3, 4]
//
// The core is generic over the Element constraint; LongList, IntList and
// FloatList name the common widths. Because Go monomorphizes generics,
// every instantiation keeps its elements unboxed.
//
// # Capacity
//
// Capacity grows by 1.5x whenever a mutation would exceed it, and never
// shrinks on its own. EnsureCapacity pre-sizes the buffer ahead of bulk
// insertion; Trim releases slack after bulk removal.
//
// # Errors
//
// Precondition violations panic immediately, before any structural
// mutation, with an error value describing the failure: an *IndexError
// for out-of-range indices, a *RangeError for inverted ranges, and
// errors wrapping ErrEmpty or ErrNoMatch for First/Last on empty or
// unmatched input. Operations whose contract defines "not found" as a
// valid result (IndexOf, Remove) report it through their return value
// instead.
//
// # Concurrency
//
// Lists carry no internal synchronization. Concurrent reads are safe
// while no goroutine mutates; any concurrent structural mutation,
// including mutation concurrent with iteration, requires external
// locking supplied by the caller.
package primitive
