package scenario

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/meldheap/heap"
	"github.com/katalvlaran/meldheap/heap/render"
)

// Run validates sc and executes it, writing one line per observable result
// to w. The heap is checked with heap.Validate after every mutating step.
// Run stops at the first failing step or when ctx is done.
//
// Progress is logged through the logger carried by ctx (see ctxlog).
func Run(ctx context.Context, sc *Scenario, w io.Writer) error {
	if err := Validate(sc); err != nil {
		return err
	}
	kind, _ := sc.HeapKind()
	r := &runner{
		w:       w,
		kind:    kind,
		handles: map[string]*heap.Node[string]{},
	}
	h, err := heap.New[string](kind, heap.WithRelocate(r.relocated))
	if err != nil {
		return err
	}
	r.h = h

	log := ctxlog.Logger(ctx).With("scenario", sc.Name, "kind", kind.String())
	log.Info("start", "steps", len(sc.Steps))
	for i, s := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		mutated, err := r.step(i, s)
		if err != nil {
			log.Error("step failed", "index", i, "op", s.Op, "err", err)
			return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		if mutated {
			if err := heap.Validate(r.h); err != nil {
				return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
			}
		}
		log.Debug("step", "index", i, "op", s.Op, "label", s.Label, "size", r.h.Len())
	}
	log.Info("done", "size", r.h.Len())
	return nil
}

type runner struct {
	w       io.Writer
	kind    heap.Kind
	h       heap.Heap[string]
	handles map[string]*heap.Node[string] // live label → node
}

func (r *runner) relocated(n *heap.Node[string]) {
	r.handles[n.Data] = n
}

func (r *runner) lookup(label string) (*heap.Node[string], error) {
	n, ok := r.handles[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return n, nil
}

// step applies s and reports whether the heap changed.
func (r *runner) step(i int, s Step) (bool, error) {
	switch s.Op {
	case OpInsert:
		if _, ok := r.handles[s.Label]; ok {
			return false, fmt.Errorf("%w: %q", ErrLabelInUse, s.Label)
		}
		n, err := r.h.Push(s.Label, s.Key)
		if err != nil {
			return false, err
		}
		r.handles[s.Label] = n
		fmt.Fprintf(r.w, "insert %s %d\n", s.Label, s.Key)
		return true, nil

	case OpMin:
		if m := r.h.Minimum(); m != nil {
			fmt.Fprintf(r.w, "min %s %d\n", m.Data, m.Key())
		} else {
			fmt.Fprintln(r.w, "min empty")
		}
		return false, nil

	case OpExtract:
		m := r.h.ExtractMin()
		if m == nil {
			fmt.Fprintln(r.w, "extract empty")
			return false, nil
		}
		delete(r.handles, m.Data)
		fmt.Fprintf(r.w, "extract %s %d\n", m.Data, m.Key())
		return true, nil

	case OpDecrease:
		n, err := r.lookup(s.Label)
		if err != nil {
			return false, err
		}
		if _, err := r.h.DecreaseKey(n, s.Key); err != nil {
			return false, err
		}
		fmt.Fprintf(r.w, "decrease %s %d\n", s.Label, s.Key)
		return true, nil

	case OpDelete:
		n, err := r.lookup(s.Label)
		if err != nil {
			return false, err
		}
		out, err := r.h.Delete(n)
		if err != nil {
			return false, err
		}
		delete(r.handles, out.Data)
		fmt.Fprintf(r.w, "delete %s %d\n", out.Data, out.Key())
		return true, nil

	case OpUnion:
		other, err := heap.New[string](r.kind, heap.WithRelocate(r.relocated))
		if err != nil {
			return false, err
		}
		for j, k := range s.Keys {
			label := unionLabel(i, j)
			n, err := other.Push(label, k)
			if err != nil {
				return false, err
			}
			r.handles[label] = n
		}
		if err := r.h.Union(other); err != nil {
			return false, err
		}
		fmt.Fprintf(r.w, "union %d size %d\n", len(s.Keys), r.h.Len())
		return true, nil

	case OpRender:
		return false, render.Fprint(r.w, r.h)
	}
	return false, fmt.Errorf("%w: unknown op", ErrInvalidStep)
}
