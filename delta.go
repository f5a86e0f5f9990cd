package jdiff

import (
	"encoding/json"
	"sort"
)

// DeltaType defines the relationship a Delta describes between two positions
type DeltaType string

const (
	// DTEqual means both sides present deeply equal nodes
	DTEqual = DeltaType("equal")
	// DTDifferentContent means both sides are the same kind of scalar with
	// different values
	DTDifferentContent = DeltaType("content")
	// DTDifferentVariant means the two sides are different kinds of node, eg:
	// a number and an object
	DTDifferentVariant = DeltaType("variant")
	// DTMissingInSecond is a position only the first document has
	DTMissingInSecond = DeltaType("missing_in_second")
	// DTMissingInFirst is a position only the second document has
	DTMissingInFirst = DeltaType("missing_in_first")
	// DTList is the positional comparison of two arrays
	DTList = DeltaType("list")
	// DTMap is the by-key comparison of two objects
	DTMap = DeltaType("map")
)

// marker is the single-character tag used in compact & pretty output
func (dt DeltaType) marker() string {
	switch dt {
	case DTEqual:
		return " "
	case DTDifferentContent:
		return "~"
	case DTDifferentVariant:
		return "!"
	case DTMissingInSecond:
		return "-"
	case DTMissingInFirst:
		return "+"
	case DTList:
		return "["
	case DTMap:
		return "{"
	default:
		return "?"
	}
}

// Delta describes the relationship between one position in the first document
// and the corresponding position in the second. Left & Right are the nodes of
// the source documents at this position, shared by reference. A side that
// lacks the position is nil (use Type to tell an absent side from a JSON null).
//
// Deltas are built once by Compare and must not be modified afterwards
type Delta struct {
	Type DeltaType

	Left  interface{}
	Right interface{}

	// child deltas, set only for DTList & DTMap respectively
	List []*Delta
	Map  map[string]*Delta
}

// IsLeaf returns true for every delta type that doesn't carry child deltas
func (d *Delta) IsLeaf() bool {
	return d.Type != DTList && d.Type != DTMap
}

// IsEqual reports whether d and all of its descendants are DTEqual
func (d *Delta) IsEqual() bool {
	switch d.Type {
	case DTEqual:
		return true
	case DTList:
		for _, ch := range d.List {
			if !ch.IsEqual() {
				return false
			}
		}
		return true
	case DTMap:
		for _, ch := range d.Map {
			if !ch.IsEqual() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Keys lists the keys of a DTMap delta in sorted order
func (d *Delta) Keys() []string {
	keys := make([]string, 0, len(d.Map))
	for k := range d.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON implements a custom compact JSON Marshaller:
//   [" ", value]
//   ["~", left, right]
//   ["-", left]
//   ["[", [children...]]
//   ["{", {key: child...}]
func (d *Delta) MarshalJSON() ([]byte, error) {
	v := []interface{}{d.Type.marker()}
	switch d.Type {
	case DTEqual, DTMissingInSecond:
		v = append(v, d.Left)
	case DTMissingInFirst:
		v = append(v, d.Right)
	case DTDifferentContent, DTDifferentVariant:
		v = append(v, d.Left, d.Right)
	case DTList:
		chs := d.List
		if chs == nil {
			chs = []*Delta{}
		}
		v = append(v, chs)
	case DTMap:
		chs := d.Map
		if chs == nil {
			chs = map[string]*Delta{}
		}
		v = append(v, chs)
	}
	return json.Marshal(v)
}
