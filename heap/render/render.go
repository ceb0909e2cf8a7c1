// Package render prints a level-by-level layout of a heap for debugging.
//
// It reads the tree through the read-only accessors of package heap and
// never mutates it. The layout is meant for humans; nothing should parse it.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/meldheap/heap"
)

// maxWidthDegree caps the field width so large trees stay printable.
const maxWidthDegree = 8

// Fprint writes every tree of h to w, one line per depth. Each key is right
// aligned in a field 3·max(2, 2^degree) wide, so a parent roughly spans its
// subtree. Fibonacci trees are separated by a blank line.
func Fprint[T any](w io.Writer, h heap.Heap[T]) error {
	bw := bufio.NewWriter(w)
	for _, r := range heap.Roots(h) {
		for _, level := range heap.Levels(r) {
			for _, n := range level {
				fmt.Fprintf(bw, "%*d", fieldWidth(n.Degree()), n.Key())
			}
			bw.WriteByte('\n')
		}
		if h.Kind() == heap.Fibonacci {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Sprint returns the Fprint layout as a string.
func Sprint[T any](h heap.Heap[T]) string {
	var sb strings.Builder
	_ = Fprint(&sb, h)
	return sb.String()
}

func fieldWidth(degree int) int {
	if degree > maxWidthDegree {
		degree = maxWidthDegree
	}
	span := 1 << degree
	if span == 1 {
		span = 2
	}
	return 3 * span
}
