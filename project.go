package jdiff

import (
	"github.com/mitchellh/copystructure"
)

// Filter decides what a single delta contributes to a projection. Returning
// ok == true replaces the delta (and anything below it) with v verbatim, v may
// be nil to keep a JSON null. Returning ok == false declines, leaving Project
// to apply its default behaviour
type Filter interface {
	Filter(d *Delta) (v interface{}, ok bool)
}

// FilterFunc adapts an ordinary function to the Filter interface
type FilterFunc func(d *Delta) (interface{}, bool)

// Filter calls f(d)
func (f FilterFunc) Filter(d *Delta) (interface{}, bool) {
	return f(d)
}

// Project folds a delta tree into a plain document tree, consulting f at every
// delta. When f declines a DTList or DTMap delta its children are projected,
// children that project to nothing are dropped, and an empty result projects
// to nothing. When f declines any other delta it projects to nothing.
//
// ok is false when the whole projection is absent. Callers that need a
// document regardless render absent as JSON null
func Project(d *Delta, f Filter) (v interface{}, ok bool) {
	if v, ok := f.Filter(d); ok {
		return v, true
	}

	switch d.Type {
	case DTList:
		var list []interface{}
		for _, ch := range d.List {
			if v, ok := Project(ch, f); ok {
				list = append(list, v)
			}
		}
		if len(list) == 0 {
			return nil, false
		}
		return list, true
	case DTMap:
		obj := map[string]interface{}{}
		for k, ch := range d.Map {
			if v, ok := Project(ch, f); ok {
				obj[k] = v
			}
		}
		if len(obj) == 0 {
			return nil, false
		}
		return obj, true
	default:
		return nil, false
	}
}

// ProjectCopy is Project, but the result shares no nodes with either source
// document and is safe to modify
func ProjectCopy(d *Delta, f Filter) (interface{}, bool, error) {
	v, ok := Project(d, f)
	if !ok {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, nil
	}
	cp, err := copystructure.Copy(v)
	if err != nil {
		return nil, false, newCopyProjectionError(err)
	}
	return cp, true, nil
}

var (
	// EqualFilter keeps the structure both documents agree on
	EqualFilter Filter = FilterFunc(filterEqual)
	// DiffABFilter keeps disagreements as [first, second] pairs, and positions
	// only the first document has as their bare value
	DiffABFilter Filter = FilterFunc(filterDiffAB)
	// DiffBAFilter mirrors DiffABFilter from the second document's side: pairs
	// are [second, first], positions only the second document has are kept
	DiffBAFilter Filter = FilterFunc(filterDiffBA)
)

func filterEqual(d *Delta) (interface{}, bool) {
	switch d.Type {
	case DTEqual:
		return d.Left, true
	case DTList:
		// two empty arrays have no children to keep, but are still equal
		if len(d.List) == 0 {
			return d.Left, true
		}
	case DTMap:
		if len(d.Map) == 0 {
			return d.Left, true
		}
	}
	return nil, false
}

func filterDiffAB(d *Delta) (interface{}, bool) {
	switch d.Type {
	case DTDifferentContent, DTDifferentVariant:
		return []interface{}{d.Left, d.Right}, true
	case DTMissingInSecond:
		return d.Left, true
	}
	return nil, false
}

func filterDiffBA(d *Delta) (interface{}, bool) {
	switch d.Type {
	case DTDifferentContent, DTDifferentVariant:
		return []interface{}{d.Right, d.Left}, true
	case DTMissingInFirst:
		return d.Right, true
	}
	return nil, false
}
