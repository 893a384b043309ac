package primitive

// Named instantiations for the common element widths. The generic core
// is compiled once per width, so these are pure spelling conveniences —
// storage stays unboxed either way.

// IntList is a read-only view of 32-bit signed integers.
type IntList = List[int32]

// MutableIntList is a growable list of 32-bit signed integers.
type MutableIntList = MutableList[int32]

// LongList is a read-only view of 64-bit signed integers.
type LongList = List[int64]

// MutableLongList is a growable list of 64-bit signed integers.
type MutableLongList = MutableList[int64]

// FloatList is a read-only view of 32-bit floating-point values.
type FloatList = List[float32]

// MutableFloatList is a growable list of 32-bit floating-point values.
type MutableFloatList = MutableList[float32]

// NewInt returns an empty MutableIntList with DefaultCapacity.
func NewInt() *MutableIntList { return New[int32]() }

// NewLong returns an empty MutableLongList with DefaultCapacity.
func NewLong() *MutableLongList { return New[int64]() }

// NewFloat returns an empty MutableFloatList with DefaultCapacity.
func NewFloat() *MutableFloatList { return New[float32]() }

// IntListOf returns a MutableIntList holding the given values, capacity
// sized exactly to their count.
func IntListOf(values ...int32) *MutableIntList { return Of(values...) }

// LongListOf returns a MutableLongList holding the given values,
// capacity sized exactly to their count.
func LongListOf(values ...int64) *MutableLongList { return Of(values...) }

// FloatListOf returns a MutableFloatList holding the given values,
// capacity sized exactly to their count.
func FloatListOf(values ...float32) *MutableFloatList { return Of(values...) }
