// Package scenario loads and runs scripted heap workloads. A scenario file
// is TOML or YAML, picked by extension, and lists the operations to apply
// to one heap in order:
//
//	name = "demo"
//	kind = "binomial"
//
//	[[steps]]
//	op = "insert"
//	label = "a"
//	key = 5
//
//	[[steps]]
//	op = "extract"
//
// Supported ops are insert, min, extract, decrease, delete, union and
// render. Labels name the payloads so later steps can refer to them.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil"
	cerrors "cloudeng.io/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meldheap/heap"
)

var (
	// ErrUnknownFormat is returned by Load for extensions other than
	// .toml, .yaml and .yml.
	ErrUnknownFormat = errors.New("scenario: unknown file format")

	// ErrInvalidStep is wrapped by every problem Validate finds.
	ErrInvalidStep = errors.New("scenario: invalid step")

	// ErrUnknownLabel indicates a step refers to a label that is not in the heap.
	ErrUnknownLabel = errors.New("scenario: label not in heap")

	// ErrLabelInUse indicates an insert reuses a label that is still in the heap.
	ErrLabelInUse = errors.New("scenario: label already in heap")
)

// Operation names.
const (
	OpInsert   = "insert"
	OpMin      = "min"
	OpExtract  = "extract"
	OpDecrease = "decrease"
	OpDelete   = "delete"
	OpUnion    = "union"
	OpRender   = "render"
)

// Step is one operation. Which fields matter depends on Op.
type Step struct {
	Op    string  `toml:"op" yaml:"op"`
	Label string  `toml:"label" yaml:"label"`
	Key   int64   `toml:"key" yaml:"key"`
	Keys  []int64 `toml:"keys" yaml:"keys"` // union only
}

// Scenario is a named list of steps run against one heap kind.
type Scenario struct {
	Name  string `toml:"name" yaml:"name"`
	Kind  string `toml:"kind" yaml:"kind"` // defaults to fibonacci
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or ".yml").
// Unknown keys are rejected in both formats.
func Parse(data []byte, ext string) (*Scenario, error) {
	var sc Scenario
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &sc)
		if err != nil {
			return nil, err
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("scenario: unknown keys %v", extra)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil {
			return nil, cmdutil.YAMLErrorWithSource(data, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return &sc, nil
}

// HeapKind returns the heap variant named by sc.Kind.
func (sc *Scenario) HeapKind() (heap.Kind, error) {
	if sc.Kind == "" {
		return heap.Fibonacci, nil
	}
	return heap.ParseKind(sc.Kind)
}

// Validate checks every step statically and reports all problems at once.
// It tracks which labels are live so that decrease and delete of a label
// that was never inserted or was already deleted are caught before anything
// runs. Which label an extract removes is only known at run time, so after
// the first extract a repeated insert is left for Run to judge.
func Validate(sc *Scenario) error {
	errs := &cerrors.M{}
	if _, err := sc.HeapKind(); err != nil {
		errs.Append(err)
	}
	live := map[string]bool{}
	extracted := false
	bad := func(i int, s Step, format string, args ...any) {
		errs.Append(fmt.Errorf("%w: step %d (%s): %s", ErrInvalidStep, i, s.Op, fmt.Sprintf(format, args...)))
	}
	for i, s := range sc.Steps {
		switch s.Op {
		case OpInsert:
			switch {
			case s.Label == "":
				bad(i, s, "missing label")
			case live[s.Label] && !extracted:
				bad(i, s, "label %q inserted twice", s.Label)
			}
			if s.Key < 0 {
				bad(i, s, "negative key %d", s.Key)
			}
			live[s.Label] = true
		case OpDecrease:
			if !live[s.Label] {
				bad(i, s, "unknown label %q", s.Label)
			}
			if s.Key < 0 {
				bad(i, s, "negative key %d", s.Key)
			}
		case OpDelete:
			if !live[s.Label] {
				bad(i, s, "unknown label %q", s.Label)
			}
			delete(live, s.Label)
		case OpUnion:
			if len(s.Keys) == 0 {
				bad(i, s, "no keys")
			}
			for j, k := range s.Keys {
				if k < 0 {
					bad(i, s, "negative key %d", k)
				}
				live[unionLabel(i, j)] = true
			}
		case OpExtract:
			extracted = true
		case OpMin, OpRender:
		default:
			bad(i, s, "unknown op")
		}
	}
	return errs.Err()
}

// unionLabel names the j-th node brought in by the union at step i.
func unionLabel(step, j int) string {
	return fmt.Sprintf("u%d.%d", step, j)
}
