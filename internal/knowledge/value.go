package knowledge

import (
	"fmt"
	"math/bits"
)

// MaxRange is the largest axis a ValueKnowledge can track.
const MaxRange = 16

// ValueKnowledge tracks what is known about one axis (color or rank) of a
// card. A positive hint resolves the axis; negative hints only narrow the
// plausible set and never resolve it on their own.
type ValueKnowledge struct {
	plausible uint16
	value     int
	resolved  bool
	size      int
}

// NewValue returns knowledge over [0, size) with every value plausible.
// It panics unless 0 < size <= MaxRange.
func NewValue(size int) ValueKnowledge {
	if size <= 0 || size > MaxRange {
		panic(fmt.Errorf("value knowledge range %d out of (0, %d]", size, MaxRange))
	}
	return ValueKnowledge{
		plausible: uint16(1<<size - 1),
		size:      size,
	}
}

func (vk ValueKnowledge) Range() int { return vk.size }

// Hinted reports whether a positive hint has resolved this axis.
func (vk ValueKnowledge) Hinted() bool { return vk.resolved }

// Value returns the resolved value, if any.
func (vk ValueKnowledge) Value() (int, bool) {
	if !vk.resolved {
		return -1, false
	}
	return vk.value, true
}

func (vk ValueKnowledge) IsPlausible(v int) bool {
	vk.checkRange(v)
	return vk.plausible&(1<<v) != 0
}

// NumPlausible is the number of values not yet ruled out.
func (vk ValueKnowledge) NumPlausible() int { return bits.OnesCount16(vk.plausible) }

// ApplyIsValueHint records that the axis equals v.
func (vk *ValueKnowledge) ApplyIsValueHint(v int) {
	vk.checkRange(v)
	if vk.resolved && vk.value != v {
		panic(fmt.Errorf("value hint %d conflicts with resolved value %d", v, vk.value))
	}
	if vk.plausible&(1<<v) == 0 {
		panic(fmt.Errorf("value hint %d for a value already ruled out", v))
	}
	vk.value = v
	vk.resolved = true
	vk.plausible = 1 << v
}

// ApplyIsNotValueHint records that the axis does not equal v.
func (vk *ValueKnowledge) ApplyIsNotValueHint(v int) {
	vk.checkRange(v)
	if vk.resolved && vk.value == v {
		panic(fmt.Errorf("negative hint %d contradicts resolved value", v))
	}
	vk.plausible &^= 1 << v
}

func (vk ValueKnowledge) checkRange(v int) {
	if v < 0 || v >= vk.size {
		panic(fmt.Errorf("value %d out of range [0, %d)", v, vk.size))
	}
}
