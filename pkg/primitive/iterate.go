package primitive

import "iter"

// Structural mutation of a list during any of the traversals below is
// undefined behavior; the list does not guard against it at runtime.

// ForEach calls fn for each element in index order.
func (l *MutableList[T]) ForEach(fn func(T)) {
	for i := 0; i < l.size; i++ {
		fn(l.elements[i])
	}
}

// ForEachIndexed calls fn with each index and element in index order.
func (l *MutableList[T]) ForEachIndexed(fn func(index int, element T)) {
	for i := 0; i < l.size; i++ {
		fn(i, l.elements[i])
	}
}

// ForEachReversed calls fn for each element from the last index down to
// the first.
func (l *MutableList[T]) ForEachReversed(fn func(T)) {
	for i := l.size - 1; i >= 0; i-- {
		fn(l.elements[i])
	}
}

// ForEachReversedIndexed calls fn with each index and element from the
// last index down to the first.
func (l *MutableList[T]) ForEachReversedIndexed(fn func(index int, element T)) {
	for i := l.size - 1; i >= 0; i-- {
		fn(i, l.elements[i])
	}
}

// All yields index/element pairs in ascending index order, for use with
// range-over-func.
func (l *MutableList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.elements[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs in descending index order.
func (l *MutableList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.size - 1; i >= 0; i-- {
			if !yield(i, l.elements[i]) {
				return
			}
		}
	}
}

// Indices yields every valid index in ascending order.
func (l *MutableList[T]) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// The folds are package-level functions rather than methods because the
// accumulator carries its own type parameter, which Go methods cannot
// introduce.

// Fold combines the elements in index order, starting from initial:
// op(op(initial, e0), e1) and so on.
func Fold[T Element, R any](l List[T], initial R, op func(acc R, element T) R) R {
	acc := initial
	for _, e := range l.elems() {
		acc = op(acc, e)
	}
	return acc
}

// FoldIndexed is Fold with the element's index passed to op.
func FoldIndexed[T Element, R any](l List[T], initial R, op func(index int, acc R, element T) R) R {
	acc := initial
	for i, e := range l.elems() {
		acc = op(i, acc, e)
	}
	return acc
}

// FoldRight combines the elements from the last index down to the
// first, starting from initial. op receives the element before the
// accumulator: op(e0, op(e1, ... op(en, initial))).
func FoldRight[T Element, R any](l List[T], initial R, op func(element T, acc R) R) R {
	acc := initial
	es := l.elems()
	for i := len(es) - 1; i >= 0; i-- {
		acc = op(es[i], acc)
	}
	return acc
}

// FoldRightIndexed is FoldRight with the element's index passed to op.
func FoldRightIndexed[T Element, R any](l List[T], initial R, op func(index int, element T, acc R) R) R {
	acc := initial
	es := l.elems()
	for i := len(es) - 1; i >= 0; i-- {
		acc = op(i, es[i], acc)
	}
	return acc
}
