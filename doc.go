// Package jdiff is a positional structural differ for JSON documents.
//
// Given two decoded documents jdiff builds a delta tree that records, for
// every position present in either document, whether the two sides agree,
// disagree, or one side lacks a node the other has. Three views can be
// projected from a single delta tree:
//
//	equal    the structure both documents share
//	diff ab  disagreements & omissions seen from the first document
//	diff ba  the same seen from the second document
//
// jdiff operates on the go types created by unmarshaling JSON,
// two complex types:
//   map[string]interface{}
//   []interface{}
// and scalars:
//   string, json.Number (or float64, int...), bool, nil
//
// Lists are compared strictly by position, elements are never reordered or
// matched by similarity. Delta nodes hold references to the nodes of the two
// source documents, they are never copied. Use ProjectCopy when a projection
// must be safe to mutate.
package jdiff
