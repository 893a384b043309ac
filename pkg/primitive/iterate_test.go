package primitive

import (
	"fmt"
	"testing"
)

func TestForEach_Order(t *testing.T) {
	l := LongListOf(1, 2, 3)

	var forward []int64
	l.ForEach(func(v int64) { forward = append(forward, v) })
	if fmt.Sprint(forward) != "[1 2 3]" {
		t.Errorf("ForEach visited %v", forward)
	}

	var reversed []int64
	l.ForEachReversed(func(v int64) { reversed = append(reversed, v) })
	if fmt.Sprint(reversed) != "[3 2 1]" {
		t.Errorf("ForEachReversed visited %v", reversed)
	}
}

func TestForEachIndexed_Order(t *testing.T) {
	l := LongListOf(10, 20, 30)

	var got []string
	l.ForEachIndexed(func(i int, v int64) {
		got = append(got, fmt.Sprintf("%d:%d", i, v))
	})
	if fmt.Sprint(got) != "[0:10 1:20 2:30]" {
		t.Errorf("ForEachIndexed visited %v", got)
	}

	got = got[:0]
	l.ForEachReversedIndexed(func(i int, v int64) {
		got = append(got, fmt.Sprintf("%d:%d", i, v))
	})
	if fmt.Sprint(got) != "[2:30 1:20 0:10]" {
		t.Errorf("ForEachReversedIndexed visited %v", got)
	}
}

func TestForEach_EmptyList(t *testing.T) {
	l := New[int64]()
	calls := 0
	count := func(int64) { calls++ }
	l.ForEach(count)
	l.ForEachReversed(count)
	if calls != 0 {
		t.Errorf("traversals of an empty list made %d calls", calls)
	}
}

func TestAll_Backward(t *testing.T) {
	l := LongListOf(10, 20, 30)

	var got []string
	for i, v := range l.All() {
		got = append(got, fmt.Sprintf("%d:%d", i, v))
	}
	if fmt.Sprint(got) != "[0:10 1:20 2:30]" {
		t.Errorf("All yielded %v", got)
	}

	got = got[:0]
	for i, v := range l.Backward() {
		got = append(got, fmt.Sprintf("%d:%d", i, v))
	}
	if fmt.Sprint(got) != "[2:30 1:20 0:10]" {
		t.Errorf("Backward yielded %v", got)
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	l := LongListOf(1, 2, 3)
	visited := 0
	for _, v := range l.All() {
		visited++
		if v == 2 {
			break
		}
	}
	if visited != 2 {
		t.Errorf("visited %d elements, want 2", visited)
	}
}

func TestIndices(t *testing.T) {
	l := LongListOf(5, 6, 7)
	var got []int
	for i := range l.Indices() {
		got = append(got, i)
	}
	if fmt.Sprint(got) != "[0 1 2]" {
		t.Errorf("Indices yielded %v", got)
	}

	for range New[int64]().Indices() {
		t.Fatal("Indices yielded a value for an empty list")
	}
}

func TestFold(t *testing.T) {
	l := LongListOf(1, 2, 3)
	sum := Fold(l, int64(0), func(acc, e int64) int64 { return acc + e })
	if sum != 6 {
		t.Errorf("Fold sum = %d, want 6", sum)
	}

	// The accumulator's type is independent of the element type.
	joined := Fold(l, "", func(acc string, e int64) string {
		return fmt.Sprintf("%s(%d", acc, e)
	})
	if joined != "(1(2(3" {
		t.Errorf("Fold = %q, want %q", joined, "(1(2(3")
	}
}

func TestFoldRight_OrderAndArgumentOrder(t *testing.T) {
	l := LongListOf(1, 2, 3)
	// A non-commutative combinator distinguishes left from right folds
	// and element-first from accumulator-first argument order.
	got := FoldRight(l, "z", func(e int64, acc string) string {
		return fmt.Sprintf("%d>%s", e, acc)
	})
	if got != "1>2>3>z" {
		t.Errorf("FoldRight = %q, want %q", got, "1>2>3>z")
	}
}

func TestFoldIndexed(t *testing.T) {
	l := LongListOf(10, 20, 30)
	got := FoldIndexed(l, "", func(i int, acc string, e int64) string {
		return fmt.Sprintf("%s[%d:%d]", acc, i, e)
	})
	if got != "[0:10][1:20][2:30]" {
		t.Errorf("FoldIndexed = %q", got)
	}
}

func TestFoldRightIndexed(t *testing.T) {
	l := LongListOf(10, 20, 30)
	got := FoldRightIndexed(l, "", func(i int, e int64, acc string) string {
		return fmt.Sprintf("[%d:%d]%s", i, e, acc)
	})
	if got != "[0:10][1:20][2:30]" {
		t.Errorf("FoldRightIndexed = %q", got)
	}
}

func TestFold_EmptyListReturnsInitial(t *testing.T) {
	l := New[int64]()
	if got := Fold(l, 42, func(acc int, _ int64) int { return 0 }); got != 42 {
		t.Errorf("Fold on empty = %d, want initial 42", got)
	}
	if got := FoldRight(l, 42, func(_ int64, acc int) int { return 0 }); got != 42 {
		t.Errorf("FoldRight on empty = %d, want initial 42", got)
	}
}
