package jdiff

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// nodeType defines all of the atoms in our universe, or the types of data we
// will encounter while comparing documents
type nodeType uint8

const (
	ntUnknown nodeType = iota
	ntObject
	ntArray
	ntString
	ntNumber
	ntBool
	ntNull
)

func (nt nodeType) String() string {
	switch nt {
	case ntObject:
		return "object"
	case ntArray:
		return "array"
	case ntString:
		return "string"
	case ntNumber:
		return "number"
	case ntBool:
		return "bool"
	case ntNull:
		return "null"
	default:
		return "unknown"
	}
}

func typeOf(v interface{}) nodeType {
	switch v.(type) {
	case nil:
		return ntNull
	case map[string]interface{}:
		return ntObject
	case []interface{}:
		return ntArray
	case string:
		return ntString
	case bool:
		return ntBool
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ntNumber
	default:
		return ntUnknown
	}
}

// numbersEqual compares two number nodes by value within a class. integers
// (json.Number literals without a fraction or exponent that fit 64 bits, and
// go integer types) never equal floats, so 1 and 1.0 are different content
// while 1.0 and 1.00 are equal. unparseable json.Number literals compare by
// their text
func numbersEqual(a, b interface{}) bool {
	an, aerr := toNumber(a)
	bn, berr := toNumber(b)
	if aerr != nil || berr != nil {
		al, aok := a.(json.Number)
		bl, bok := b.(json.Number)
		return aok && bok && al == bl
	}
	return an == bn
}

// number is a classified numeric value. integers are stored as sign &
// magnitude so every int64 and uint64 fits
type number struct {
	float bool
	f     float64
	neg   bool
	abs   uint64
}

func intNumber(i int64) number {
	if i < 0 {
		return number{neg: true, abs: uint64(-(i + 1)) + 1}
	}
	return number{abs: uint64(i)}
}

func toNumber(v interface{}) (number, error) {
	switch x := v.(type) {
	case json.Number:
		s := string(x)
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return intNumber(i), nil
			}
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return number{abs: u}, nil
			}
		}
		f, err := x.Float64()
		if err != nil {
			return number{}, err
		}
		return number{float: true, f: f}, nil
	case float64:
		return number{float: true, f: x}, nil
	case float32:
		return number{float: true, f: float64(x)}, nil
	case int:
		return intNumber(int64(x)), nil
	case int8:
		return intNumber(int64(x)), nil
	case int16:
		return intNumber(int64(x)), nil
	case int32:
		return intNumber(int64(x)), nil
	case int64:
		return intNumber(x), nil
	case uint:
		return number{abs: uint64(x)}, nil
	case uint8:
		return number{abs: uint64(x)}, nil
	case uint16:
		return number{abs: uint64(x)}, nil
	case uint32:
		return number{abs: uint64(x)}, nil
	case uint64:
		return number{abs: x}, nil
	default:
		return number{}, fmt.Errorf("not a number: %T", v)
	}
}

// deepEqual is JSON-aware deep equality over document trees
func deepEqual(a, b interface{}) bool {
	at, bt := typeOf(a), typeOf(b)
	if at != bt {
		return false
	}
	switch at {
	case ntNull:
		return true
	case ntNumber:
		return numbersEqual(a, b)
	case ntString:
		return a.(string) == b.(string)
	case ntBool:
		return a.(bool) == b.(bool)
	case ntArray:
		x, y := a.([]interface{}), b.([]interface{})
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !deepEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case ntObject:
		x, y := a.(map[string]interface{}), b.(map[string]interface{})
		if len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !deepEqual(xv, yv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// countNodes returns the number of nodes in a document tree, including v
func countNodes(v interface{}) int {
	switch x := v.(type) {
	case []interface{}:
		n := 1
		for _, ch := range x {
			n += countNodes(ch)
		}
		return n
	case map[string]interface{}:
		n := 1
		for _, ch := range x {
			n += countNodes(ch)
		}
		return n
	default:
		return 1
	}
}

// WalkFunc is called once per delta visited by Walk. path is a slash-delimited
// address of the position, "" for the root. Returning false stops Walk from
// descending into the children of d
type WalkFunc func(path string, d *Delta) bool

// Walk a delta tree in top-down (prefix) order. map children are visited in
// sorted key order
func Walk(d *Delta, fn WalkFunc) {
	walk(d, "", fn)
}

func walk(d *Delta, path string, fn WalkFunc) {
	if !fn(path, d) {
		return
	}
	switch d.Type {
	case DTList:
		for i, ch := range d.List {
			walk(ch, path+"/"+strconv.Itoa(i), fn)
		}
	case DTMap:
		for _, k := range d.Keys() {
			walk(d.Map[k], path+"/"+escapePathToken(k), fn)
		}
	}
}

// escapePathToken escapes a key the way RFC 6901 JSON pointers do
func escapePathToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
