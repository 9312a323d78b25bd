package common

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a data structure as a
// tree of components.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a footprint accounting for the given number of
// bytes, not including any subcomponents.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{value: value}
}

// AddChild attaches the footprint of a subcomponent under the given name.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if mf.children == nil {
		mf.children = map[string]*MemoryFootprint{}
	}
	mf.children[name] = child
}

// Value provides the number of bytes consumed by the structure itself,
// excluding its subcomponents.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the number of bytes consumed including all subcomponents.
func (mf *MemoryFootprint) Total() uintptr {
	total := mf.value
	for _, child := range mf.children {
		total += child.Total()
	}
	return total
}

func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.print(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) print(sb *strings.Builder, path string) {
	fmt.Fprintf(sb, "%d %s\n", mf.Total(), path)
	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].print(sb, path+"/"+name)
	}
}
