// Package sst keeps shared strings table of the workbook.
package sst

import (
	"xlsxw/xlsx/xmlwriter"
)

const nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// Table deduplicates cell strings. Indexes are assigned in first-use order.
type Table struct {
	index   map[string]int
	strings []string
	count   int
}

func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Add returns index of the string, adding it to the table when necessary.
// Every call counts as a reference.
func (t *Table) Add(s string) int {
	t.count++
	if i, ok := t.index[s]; ok {
		return i
	}
	i := len(t.strings)
	t.index[s] = i
	t.strings = append(t.strings, s)
	return i
}

// Count is the total number of references.
func (t *Table) Count() int {
	return t.count
}

// UniqueCount is the number of distinct strings.
func (t *Table) UniqueCount() int {
	return len(t.strings)
}

func (t *Table) Empty() bool {
	return len(t.strings) == 0
}

// Assemble writes complete sharedStrings.xml document.
func (t *Table) Assemble(w *xmlwriter.Writer) {
	w.Declaration()
	w.StartTag("sst",
		xmlwriter.A("xmlns", nsMain),
		xmlwriter.AInt("count", t.count),
		xmlwriter.AInt("uniqueCount", len(t.strings)))
	for _, s := range t.strings {
		w.SharedStringElement(s, needsPreserve(s))
	}
	w.EndTag("sst")
}

// needsPreserve reports whether string starts or ends with space, tab or
// newline, Excel would drop those without xml:space="preserve".
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	return isBlank(s[0]) || isBlank(s[len(s)-1])
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
