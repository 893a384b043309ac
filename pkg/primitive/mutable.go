package primitive

import (
	"cmp"
	"slices"
)

// Capacity returns the length of the backing storage: the number of
// elements the list can hold before the next reallocation.
func (l *MutableList[T]) Capacity() int { return len(l.elements) }

// EnsureCapacity grows the backing storage so that it holds at least
// capacity elements. When growth is needed the new storage is the larger
// of capacity and 1.5x the current capacity; existing elements keep
// their indices. It is a no-op when the storage is already big enough.
func (l *MutableList[T]) EnsureCapacity(capacity int) {
	if len(l.elements) >= capacity {
		return
	}
	buf := make([]T, max(capacity, len(l.elements)*3/2))
	copy(buf, l.elements[:l.size])
	l.elements = buf
}

// Add appends value at the end of the list, growing the storage if
// needed. It always reports true.
func (l *MutableList[T]) Add(value T) bool {
	l.EnsureCapacity(l.size + 1)
	l.elements[l.size] = value
	l.size++
	return true
}

// Insert places value before index, shifting the suffix right by one.
// index may equal Size(), which appends. It panics with an *IndexError
// when index is outside [0, Size()].
func (l *MutableList[T]) Insert(index int, value T) {
	l.checkInsertIndex("Insert", index)
	l.EnsureCapacity(l.size + 1)
	// copy tolerates the overlapping ranges of an in-place shift.
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = value
	l.size++
}

// AddAll appends every given value, reporting whether the list changed.
func (l *MutableList[T]) AddAll(values ...T) bool {
	return l.InsertAll(l.size, values...)
}

// AddList appends every element of other, reporting whether the list
// changed.
func (l *MutableList[T]) AddList(other List[T]) bool {
	return l.InsertList(l.size, other)
}

// InsertAll places the given values before index, shifting the suffix
// right by their count. It panics with an *IndexError when index is
// outside [0, Size()], and reports false without mutating when values
// is empty.
func (l *MutableList[T]) InsertAll(index int, values ...T) bool {
	l.checkInsertIndex("InsertAll", index)
	if len(values) == 0 {
		return false
	}
	l.EnsureCapacity(l.size + len(values))
	copy(l.elements[index+len(values):l.size+len(values)], l.elements[index:l.size])
	copy(l.elements[index:], values)
	l.size += len(values)
	return true
}

// InsertList places every element of other before index, with the same
// semantics as InsertAll. The source is snapshotted first, so inserting
// a list into itself is well defined.
func (l *MutableList[T]) InsertList(index int, other List[T]) bool {
	l.checkInsertIndex("InsertList", index)
	if other.Size() == 0 {
		return false
	}
	return l.InsertAll(index, slices.Clone(other.elems())...)
}

// Remove deletes the first occurrence of value, reporting whether one
// was found.
func (l *MutableList[T]) Remove(value T) bool {
	i := l.IndexOf(value)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at index, shifting the suffix left by
// one, and returns the removed value. It panics with an *IndexError
// when index is outside [0, Size()).
func (l *MutableList[T]) RemoveAt(index int) T {
	l.checkIndex("RemoveAt", index)
	v := l.elements[index]
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	return v
}

// RemoveRange deletes the elements in [start, end), shifting the
// remainder left. It panics with an *IndexError when either bound is
// outside [0, Size()], and with a *RangeError when start exceeds end.
// An empty range is a no-op.
func (l *MutableList[T]) RemoveRange(start, end int) {
	l.checkInsertIndex("RemoveRange", start)
	l.checkInsertIndex("RemoveRange", end)
	if start > end {
		panic(&RangeError{Op: "RemoveRange", Start: start, End: end})
	}
	if start == end {
		return
	}
	copy(l.elements[start:], l.elements[end:l.size])
	l.size -= end - start
}

// RemoveAll deletes one occurrence from the list per occurrence of each
// value in the arguments, reporting whether the list changed. A value
// listed twice removes up to two occurrences.
func (l *MutableList[T]) RemoveAll(values ...T) bool {
	initial := l.size
	for _, v := range values {
		l.Remove(v)
	}
	return initial != l.size
}

// RemoveList deletes one occurrence per element of other, with the same
// multiset semantics as RemoveAll.
func (l *MutableList[T]) RemoveList(other List[T]) bool {
	initial := l.size
	for _, v := range other.elems() {
		l.Remove(v)
	}
	return initial != l.size
}

// RetainAll deletes every element that does not occur among the given
// values, preserving the order of the survivors, and reports whether
// anything was removed.
func (l *MutableList[T]) RetainAll(values ...T) bool {
	initial := l.size
	// Scan backward so removal never disturbs indices yet to be visited.
	for i := l.size - 1; i >= 0; i-- {
		if !slices.Contains(values, l.elements[i]) {
			l.RemoveAt(i)
		}
	}
	return initial != l.size
}

// RetainList deletes every element that does not occur in other, with
// the same semantics as RetainAll.
func (l *MutableList[T]) RetainList(other List[T]) bool {
	initial := l.size
	for i := l.size - 1; i >= 0; i-- {
		if !other.Contains(l.elements[i]) {
			l.RemoveAt(i)
		}
	}
	return initial != l.size
}

// Set overwrites the element at index and returns the previous value.
// It panics with an *IndexError when index is outside [0, Size()).
func (l *MutableList[T]) Set(index int, value T) T {
	l.checkIndex("Set", index)
	prev := l.elements[index]
	l.elements[index] = value
	return prev
}

// Clear removes all elements. The storage keeps its capacity.
func (l *MutableList[T]) Clear() { l.size = 0 }

// Trim shrinks the backing storage to the larger of minCapacity and the
// live size, if it is currently bigger than that. Live elements are
// never truncated; Trim(0) releases all slack.
func (l *MutableList[T]) Trim(minCapacity int) {
	floor := max(minCapacity, l.size)
	if len(l.elements) > floor {
		buf := make([]T, floor)
		copy(buf, l.elements[:l.size])
		l.elements = buf
	}
}

// Sort reorders the elements into ascending numeric order, in place.
func (l *MutableList[T]) Sort() {
	slices.Sort(l.elements[:l.size])
}

// SortDescending reorders the elements into descending numeric order,
// in place.
func (l *MutableList[T]) SortDescending() {
	slices.SortFunc(l.elements[:l.size], func(a, b T) int {
		return cmp.Compare(b, a)
	})
}
