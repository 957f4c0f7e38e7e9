// Package trace replays scripted operations on a vector and renders the
// resulting size and capacity history as a table.
package trace

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"

	"github.com/pavanmanishd/vector"
)

var (
	// ErrSyntax is wrapped by errors from ParseOp.
	ErrSyntax = errors.New("trace: invalid operation")

	// ErrPrecondition is wrapped by errors from Replay when an operation
	// would violate a vector precondition.
	ErrPrecondition = errors.New("trace: precondition violated")
)

// Kind identifies a vector operation.
type Kind int

const (
	Push Kind = iota
	Pop
	Insert
	Erase
	Resize
	Reserve
	Clear
)

var kindNames = map[Kind]string{
	Push:    "push",
	Pop:     "pop",
	Insert:  "insert",
	Erase:   "erase",
	Resize:  "resize",
	Reserve: "reserve",
	Clear:   "clear",
}

// arity is the number of integer arguments each operation takes.
var arity = map[Kind]int{
	Push:    1,
	Pop:     0,
	Insert:  2,
	Erase:   1,
	Resize:  1,
	Reserve: 1,
	Clear:   0,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is a single scripted operation. Args holds its integer arguments:
// push:V, insert:P:V, erase:P, resize:N, reserve:N.
type Op struct {
	Kind Kind
	Args []int
}

func (o Op) String() string {
	parts := []string{o.Kind.String()}
	for _, a := range o.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, ":")
}

// ParseOp parses one operation such as "push:3" or "insert:0:7".
func ParseOp(s string) (Op, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	kind, ok := lookupKind(strings.ToLower(fields[0]))
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
	if want := arity[kind]; len(fields)-1 != want {
		return Op{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, kind, want, len(fields)-1)
	}

	op := Op{Kind: kind}
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Op{}, fmt.Errorf("%w: %s: argument %q is not an integer", ErrSyntax, kind, f)
		}
		op.Args = append(op.Args, n)
	}
	return op, nil
}

// ParseOps parses each argument with ParseOp, stopping at the first error.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for i, a := range args {
		op, err := ParseOp(a)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func lookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Step records the vector state after one operation.
type Step struct {
	Op       string
	Len      int
	Cap      int
	Realloc  bool
	Contents []int
}

// Replay applies ops to v in order and returns one Step per operation.
// Positions are validated before each call, since the vector itself only
// asserts them in debug builds. On error the steps completed so far are
// returned along with it.
func Replay(v *vector.Vector[int], ops []Op) ([]Step, error) {
	steps := make([]Step, 0, len(ops))
	for i, op := range ops {
		if err := check(v, op); err != nil {
			return steps, fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}

		before := v.Reallocations()
		if err := apply(v, op); err != nil {
			return steps, fmt.Errorf("operation %d (%s): %w", i+1, op, err)
		}
		steps = append(steps, Step{
			Op:       op.String(),
			Len:      v.Len(),
			Cap:      v.Cap(),
			Realloc:  v.Reallocations() != before,
			Contents: append([]int(nil), v.Slice()...),
		})
	}
	return steps, nil
}

func check(v *vector.Vector[int], op Op) error {
	switch op.Kind {
	case Pop:
		if v.IsEmpty() {
			return fmt.Errorf("%w: pop on empty vector", ErrPrecondition)
		}
	case Insert:
		if p := op.Args[0]; p < 0 || p > v.Len() {
			return fmt.Errorf("%w: insert position %d outside [0:%d]", ErrPrecondition, p, v.Len())
		}
	case Erase:
		if p := op.Args[0]; p < 0 || p >= v.Len() {
			return fmt.Errorf("%w: erase position %d outside [0:%d)", ErrPrecondition, p, v.Len())
		}
	case Resize:
		if op.Args[0] < 0 {
			return fmt.Errorf("%w: negative size %d", ErrPrecondition, op.Args[0])
		}
	}
	return nil
}

// apply runs op on v. An allocation the vector refuses, such as a huge
// resize or reserve, is returned as an ErrPrecondition error.
func apply(v *vector.Vector[int], op Op) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok || !errors.Is(rerr, vector.ErrTooLarge) {
				panic(r)
			}
			err = fmt.Errorf("%w: %w", ErrPrecondition, rerr)
		}
	}()

	switch op.Kind {
	case Push:
		v.PushBack(op.Args[0])
	case Pop:
		v.PopBack()
	case Insert:
		v.Insert(op.Args[0], op.Args[1])
	case Erase:
		v.Erase(op.Args[0])
	case Resize:
		v.Resize(op.Args[0])
	case Reserve:
		v.Reserve(op.Args[0])
	case Clear:
		v.Clear()
	}
	return nil
}

// RenderOptions controls Render output.
type RenderOptions struct {
	Markdown bool // markdown table instead of box drawing
	Contents bool // include the live elements column
}

// Render writes steps to w as a table.
func Render(w io.Writer, steps []Step, opts RenderOptions) error {
	var table *tablewriter.Table
	if opts.Markdown {
		table = tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewMarkdown()))
	} else {
		table = tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewBlueprint()))
	}

	headers := []string{"#", "Op", "Len", "Cap", "Realloc"}
	if opts.Contents {
		headers = append(headers, "Contents")
	}
	table.Header(headers)

	var rows [][]string
	for i, s := range steps {
		realloc := ""
		if s.Realloc {
			realloc = "yes"
		}
		row := []string{
			strconv.Itoa(i + 1),
			s.Op,
			strconv.Itoa(s.Len),
			strconv.Itoa(s.Cap),
			realloc,
		}
		if opts.Contents {
			row = append(row, fmt.Sprint(s.Contents))
		}
		rows = append(rows, row)
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("trace: building table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("trace: rendering table: %w", err)
	}
	return nil
}
