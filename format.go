package jdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(d *Delta, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, d, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of a delta tree to w, one line per leaf
// position, children of arrays & objects indented beneath them. Each leaf line
// starts with a marker:
//   " " equal
//   "~" different content, written "left => right"
//   "!" different variant, written "left => right"
//   "-" missing in second
//   "+" missing in first
// if colorTTY is true markers are coloured with ANSI escapes. object keys are
// written in sorted order
func FormatPretty(w io.Writer, d *Delta, colorTTY bool) error {
	var colorMap map[DeltaType]string

	if colorTTY {
		colorMap = map[DeltaType]string{
			DeltaType("close"): "\x1b[0m", // end color tag

			DTEqual:            "\x1b[37m", // netural
			DTMissingInFirst:   "\x1b[32m", // green
			DTMissingInSecond:  "\x1b[31m", // red
			DTDifferentContent: "\x1b[34m", // blue
			DTDifferentVariant: "\x1b[35m", // magenta
		}
	}

	return formatPretty(w, "", d, 0, colorMap)
}

func formatPretty(w io.Writer, name string, d *Delta, indent int, colorMap map[DeltaType]string) error {
	prefix := strings.Repeat("  ", indent)
	label := ""
	if name != "" {
		label = name + ": "
	}

	if !d.IsLeaf() {
		if (d.Type == DTList && len(d.List) == 0) || (d.Type == DTMap && len(d.Map) == 0) {
			data, err := marshalString(d.Left)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s%s%s %s%s%s\n", prefix, colorMap[DTEqual], DTEqual.marker(), label, data, colorMap[DeltaType("close")])
			return err
		}

		childIndent := indent
		if name != "" {
			if _, err := fmt.Fprintf(w, "%s  %s:\n", prefix, name); err != nil {
				return err
			}
			childIndent++
		}

		if d.Type == DTList {
			for i, ch := range d.List {
				if err := formatPretty(w, strconv.Itoa(i), ch, childIndent, colorMap); err != nil {
					return err
				}
			}
			return nil
		}
		for _, k := range d.Keys() {
			if err := formatPretty(w, strconv.Quote(k), d.Map[k], childIndent, colorMap); err != nil {
				return err
			}
		}
		return nil
	}

	var data string
	switch d.Type {
	case DTDifferentContent, DTDifferentVariant:
		l, err := marshalString(d.Left)
		if err != nil {
			return err
		}
		r, err := marshalString(d.Right)
		if err != nil {
			return err
		}
		data = l + " => " + r
	case DTMissingInFirst:
		r, err := marshalString(d.Right)
		if err != nil {
			return err
		}
		data = r
	default:
		l, err := marshalString(d.Left)
		if err != nil {
			return err
		}
		data = l
	}

	_, err := fmt.Fprintf(w, "%s%s%s %s%s%s\n", prefix, colorMap[d.Type], d.Type.marker(), label, data, colorMap[DeltaType("close")])
	return err
}

func marshalString(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, color bool) string {
	var (
		neutralColor, insertColor, deleteColor, updateColor, variantColor, closeColor string
	)

	if ds == nil {
		return "<nil>"
	}

	if color {
		neutralColor = "\x1b[37m"
		insertColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		updateColor = "\x1b[34m"
		variantColor = "\x1b[35m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	elsColor := insertColor
	change := ds.NodeChange()
	elementsWord := "elements"
	sign := "+"
	if change < 0 {
		elsColor = deleteColor
		sign = ""
	} else if change == 0 {
		elsColor = neutralColor
		sign = ""
	}
	if change == 1 || change == -1 {
		elementsWord = "element"
	}

	buf.WriteString(fmt.Sprintf("%s%s%d %s%s%s%s.",
		elsColor, sign, change, closeColor,
		neutralColor, elementsWord, closeColor,
	))

	buf.WriteString(fmt.Sprintf(" %s%d equal.%s", neutralColor, ds.Equal, closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d changed.%s", updateColor, ds.Content, closeColor))
	if ds.Variant > 0 {
		buf.WriteString(fmt.Sprintf(" %s%d retyped.%s", variantColor, ds.Variant, closeColor))
	}
	buf.WriteString(fmt.Sprintf(" %s%d only in first.%s", deleteColor, ds.MissingInSecond, closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d only in second.%s", insertColor, ds.MissingInFirst, closeColor))

	buf.WriteRune('\n')

	return buf.String()
}
