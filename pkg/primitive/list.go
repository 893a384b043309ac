package primitive

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// DefaultCapacity is the backing-storage size of lists created by New.
const DefaultCapacity = 16

// Element is the set of fixed-width numeric types a list can store
// unboxed in contiguous memory.
type Element interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

// List is the read-only capability of a primitive list. A *MutableList
// satisfies it; code holding a List cannot mutate the storage behind it.
//
// Reads are safe from multiple goroutines only while no goroutine
// mutates the underlying MutableList.
type List[T Element] interface {
	fmt.Stringer

	// Size returns the number of elements in the list.
	Size() int
	// IsEmpty reports whether the list holds no elements.
	IsEmpty() bool
	// IsNotEmpty reports whether the list holds at least one element.
	IsNotEmpty() bool
	// LastIndex returns the index of the last element, or -1 when empty.
	LastIndex() int
	// Indices yields every valid index in ascending order.
	Indices() iter.Seq[int]

	// Get returns the element at index. It panics with an *IndexError
	// when index is outside [0, Size()).
	Get(index int) T
	// GetOrElse returns the element at index, or defaultValue(index)
	// when index is outside [0, Size()).
	GetOrElse(index int, defaultValue func(index int) T) T

	// Contains reports whether value occurs in the list.
	Contains(value T) bool
	// ContainsAll reports whether every given value occurs in the list.
	ContainsAll(values ...T) bool
	// ContainsList reports whether every element of other occurs in the
	// list.
	ContainsList(other List[T]) bool

	// IndexOf returns the index of the first occurrence of value, or -1.
	IndexOf(value T) int
	// LastIndexOf returns the index of the last occurrence of value,
	// or -1.
	LastIndexOf(value T) int
	// IndexOfFirst returns the lowest index whose element satisfies
	// predicate, or -1.
	IndexOfFirst(predicate func(T) bool) int
	// IndexOfLast returns the highest index whose element satisfies
	// predicate, or -1.
	IndexOfLast(predicate func(T) bool) int

	// First returns the first element. It panics with an error wrapping
	// ErrEmpty when the list is empty.
	First() T
	// Last returns the last element. It panics with an error wrapping
	// ErrEmpty when the list is empty.
	Last() T
	// FirstMatching returns the first element satisfying predicate. It
	// panics with an error wrapping ErrNoMatch when none does.
	FirstMatching(predicate func(T) bool) T
	// LastMatching returns the last element satisfying predicate. It
	// panics with an error wrapping ErrNoMatch when none does.
	LastMatching(predicate func(T) bool) T

	// Count returns the number of elements satisfying predicate. A nil
	// predicate matches every element, so Count(nil) equals Size.
	Count(predicate func(T) bool) int
	// Any reports whether any element satisfies predicate, scanning
	// forward and short-circuiting. A nil predicate matches every
	// element, so Any(nil) equals IsNotEmpty.
	Any(predicate func(T) bool) bool
	// ReversedAny is Any scanning from the last index down to the first.
	ReversedAny(predicate func(T) bool) bool
	// None reports whether no element satisfies predicate. A nil
	// predicate matches every element, so None(nil) equals IsEmpty.
	None(predicate func(T) bool) bool

	// ForEach calls fn for each element in index order.
	ForEach(fn func(T))
	// ForEachIndexed calls fn with each index and element in index order.
	ForEachIndexed(fn func(index int, element T))
	// ForEachReversed calls fn for each element from the last index down
	// to the first.
	ForEachReversed(fn func(T))
	// ForEachReversedIndexed calls fn with each index and element from
	// the last index down to the first.
	ForEachReversedIndexed(fn func(index int, element T))
	// All yields index/element pairs in ascending index order.
	All() iter.Seq2[int, T]
	// Backward yields index/element pairs in descending index order.
	Backward() iter.Seq2[int, T]

	// Equal reports structural equality: same size and pairwise-equal
	// elements in order.
	Equal(other List[T]) bool
	// Hash returns an order-sensitive hash consistent with Equal.
	Hash() uint64

	// elems returns the live element range. Keeping it unexported seals
	// the interface to this package's implementations.
	elems() []T
}

// MutableList is a growable list of fixed-width numeric values backed by
// a single contiguous buffer it exclusively owns. The zero value is an
// empty list with no capacity, ready for use.
//
// A MutableList provides no internal synchronization: concurrent reads
// are safe while no goroutine mutates, and any concurrent structural
// mutation is a caller error requiring external locking.
type MutableList[T Element] struct {
	elements []T
	size     int
}

var _ List[int64] = (*MutableList[int64])(nil)

// New returns an empty list with DefaultCapacity.
func New[T Element]() *MutableList[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty list whose storage holds capacity
// elements before the first reallocation. It panics when capacity is
// negative.
func NewWithCapacity[T Element](capacity int) *MutableList[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("primitive: NewWithCapacity: negative capacity %d", capacity))
	}
	return &MutableList[T]{elements: make([]T, capacity)}
}

// Of returns a list holding the given values, with capacity sized
// exactly to their count. The values are copied; the list never aliases
// a caller's slice.
func Of[T Element](values ...T) *MutableList[T] {
	l := &MutableList[T]{elements: make([]T, len(values)), size: len(values)}
	copy(l.elements, values)
	return l
}

func (l *MutableList[T]) elems() []T { return l.elements[:l.size] }

// Size returns the number of elements in the list.
func (l *MutableList[T]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *MutableList[T]) IsEmpty() bool { return l.size == 0 }

// IsNotEmpty reports whether the list holds at least one element.
func (l *MutableList[T]) IsNotEmpty() bool { return l.size != 0 }

// LastIndex returns the index of the last element, or -1 when empty.
func (l *MutableList[T]) LastIndex() int { return l.size - 1 }

// Get returns the element at index. It panics with an *IndexError when
// index is outside [0, Size()).
func (l *MutableList[T]) Get(index int) T {
	l.checkIndex("Get", index)
	return l.elements[index]
}

// GetOrElse returns the element at index, or defaultValue(index) when
// index is outside [0, Size()).
func (l *MutableList[T]) GetOrElse(index int, defaultValue func(index int) T) T {
	if index < 0 || index >= l.size {
		return defaultValue(index)
	}
	return l.elements[index]
}

// Contains reports whether value occurs in the list.
func (l *MutableList[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// ContainsAll reports whether every given value occurs in the list.
func (l *MutableList[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// ContainsList reports whether every element of other occurs in the
// list.
func (l *MutableList[T]) ContainsList(other List[T]) bool {
	for _, v := range other.elems() {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (l *MutableList[T]) IndexOf(value T) int {
	for i := 0; i < l.size; i++ {
		if l.elements[i] == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func (l *MutableList[T]) LastIndexOf(value T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.elements[i] == value {
			return i
		}
	}
	return -1
}

// IndexOfFirst returns the lowest index whose element satisfies
// predicate, or -1.
func (l *MutableList[T]) IndexOfFirst(predicate func(T) bool) int {
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			return i
		}
	}
	return -1
}

// IndexOfLast returns the highest index whose element satisfies
// predicate, or -1.
func (l *MutableList[T]) IndexOfLast(predicate func(T) bool) int {
	for i := l.size - 1; i >= 0; i-- {
		if predicate(l.elements[i]) {
			return i
		}
	}
	return -1
}

// First returns the first element. It panics with an error wrapping
// ErrEmpty when the list is empty.
func (l *MutableList[T]) First() T {
	if l.size == 0 {
		panic(emptyErr("First"))
	}
	return l.elements[0]
}

// Last returns the last element. It panics with an error wrapping
// ErrEmpty when the list is empty.
func (l *MutableList[T]) Last() T {
	if l.size == 0 {
		panic(emptyErr("Last"))
	}
	return l.elements[l.size-1]
}

// FirstMatching returns the first element satisfying predicate. It
// panics with an error wrapping ErrNoMatch when none does.
func (l *MutableList[T]) FirstMatching(predicate func(T) bool) T {
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			return l.elements[i]
		}
	}
	panic(noMatchErr("FirstMatching"))
}

// LastMatching returns the last element satisfying predicate. It panics
// with an error wrapping ErrNoMatch when none does.
func (l *MutableList[T]) LastMatching(predicate func(T) bool) T {
	for i := l.size - 1; i >= 0; i-- {
		if predicate(l.elements[i]) {
			return l.elements[i]
		}
	}
	panic(noMatchErr("LastMatching"))
}

// Count returns the number of elements satisfying predicate. A nil
// predicate matches every element, so Count(nil) equals Size.
func (l *MutableList[T]) Count(predicate func(T) bool) int {
	if predicate == nil {
		return l.size
	}
	n := 0
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			n++
		}
	}
	return n
}

// Any reports whether any element satisfies predicate, scanning forward
// and short-circuiting. A nil predicate matches every element, so
// Any(nil) equals IsNotEmpty.
func (l *MutableList[T]) Any(predicate func(T) bool) bool {
	if predicate == nil {
		return l.size != 0
	}
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			return true
		}
	}
	return false
}

// ReversedAny is Any scanning from the last index down to the first.
func (l *MutableList[T]) ReversedAny(predicate func(T) bool) bool {
	if predicate == nil {
		return l.size != 0
	}
	for i := l.size - 1; i >= 0; i-- {
		if predicate(l.elements[i]) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies predicate. A nil predicate
// matches every element, so None(nil) equals IsEmpty.
func (l *MutableList[T]) None(predicate func(T) bool) bool {
	return !l.Any(predicate)
}

// Equal reports structural equality: same size and pairwise-equal
// elements in order.
func (l *MutableList[T]) Equal(other List[T]) bool {
	if other == nil || l.size != other.Size() {
		return false
	}
	for i, v := range other.elems() {
		if l.elements[i] != v {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash consistent with Equal: lists
// that compare Equal hash identically.
func (l *MutableList[T]) Hash() uint64 {
	h := uint64(1)
	for i := 0; i < l.size; i++ {
		h = 31*h + elementHash(l.elements[i])
	}
	return h
}

// String renders the list as "[e0, e1, ..., en]"; an empty list renders
// as "[]".
func (l *MutableList[T]) String() string {
	if l.size == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatElement(l.elements[i]))
	}
	b.WriteByte(']')
	return b.String()
}

// elementHash folds an element's bit pattern into 64 bits, mixing the
// high word into the low one for 64-bit cells.
func elementHash[T Element](v T) uint64 {
	switch x := any(v).(type) {
	case int32:
		return uint64(uint32(x))
	case int64:
		u := uint64(x)
		return u ^ (u >> 32)
	case uint32:
		return uint64(x)
	case uint64:
		return x ^ (x >> 32)
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		u := math.Float64bits(x)
		return u ^ (u >> 32)
	}
	return 0
}

func formatElement[T Element](v T) string {
	switch x := any(v).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}

func (l *MutableList[T]) checkIndex(op string, index int) {
	if index < 0 || index >= l.size {
		panic(&IndexError{Op: op, Index: index, Size: l.size})
	}
}

func (l *MutableList[T]) checkInsertIndex(op string, index int) {
	if index < 0 || index > l.size {
		panic(&IndexError{Op: op, Index: index, Size: l.size, Inclusive: true})
	}
}
