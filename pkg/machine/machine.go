package machine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/pkg"
	"golang.org/x/exp/maps"
)

type Op struct {
	Name string  `json:"op"`
	Arg  *string `json:"arg,omitempty"`
}

func Push(v string) Op {
	return Op{Name: "push", Arg: &v}
}

func Do(name string) Op {
	return Op{Name: name}
}

type Result struct {
	Op    string `json:"op"`
	Value string `json:"value,omitempty"`
	Size  int    `json:"size"`
	Err   string `json:"err,omitempty"`
}

type handler func(m *Machine, op Op) (string, error)

var handlers = map[string]handler{
	"push":    (*Machine).push,
	"pop":     (*Machine).pop,
	"peek":    (*Machine).peek,
	"empty":   (*Machine).empty,
	"size":    (*Machine).size,
	"len":     (*Machine).size,
	"clear":   (*Machine).clear,
	"display": (*Machine).display,
	"debug":   (*Machine).debug,
}

func New(stack *container.Stack[string], strict bool) *Machine {
	return &Machine{
		stack:  stack,
		strict: strict,
	}
}

// Machine applies named operations to a stack of strings.
type Machine struct {
	stack  *container.Stack[string]
	strict bool
}

func (m *Machine) Stack() *container.Stack[string] {
	return m.stack
}

// Run executes ops in order. Empty stack failures are recorded in the
// result unless the machine is strict; any other failure aborts the run.
func (m *Machine) Run(ctx context.Context, ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := m.Exec(ctx, op)

		switch {
		case err == nil:
		case errors.Is(err, container.ErrEmpty) && !m.strict:
			res.Err = err.Error()
		default:
			return results, fmt.Errorf("op %d [%s]: %w", i, op.Name, err)
		}

		results = append(results, res)
	}

	return results, nil
}

func (m *Machine) Exec(ctx context.Context, op Op) (Result, error) {
	h, ok := handlers[op.Name]
	if !ok {
		names := maps.Keys(handlers)
		slices.Sort(names)

		return Result{Op: op.Name, Size: m.stack.Size()}, fmt.Errorf("%w [%s], expected one of %s", pkg.ErrUnknownOp, op.Name, strings.Join(names, ", "))
	}

	value, err := h(m, op)

	res := Result{
		Op:    op.Name,
		Value: value,
		Size:  m.stack.Size(),
	}

	if err != nil {
		slog.DebugContext(ctx, "operation failed", slog.String("op", op.Name), slog.Any("err", err))

		return res, err
	}

	slog.DebugContext(ctx, "applied operation", slog.String("op", op.Name), slog.Int("size", res.Size))

	return res, nil
}

func (m *Machine) push(op Op) (string, error) {
	if op.Arg == nil {
		return "", fmt.Errorf("%w for push", pkg.ErrMissingArg)
	}

	m.stack.Push(*op.Arg)

	return "", nil
}

func (m *Machine) pop(Op) (string, error) {
	return m.stack.Pop()
}

func (m *Machine) peek(Op) (string, error) {
	return m.stack.Peek()
}

func (m *Machine) empty(Op) (string, error) {
	return strconv.FormatBool(m.stack.Empty()), nil
}

func (m *Machine) size(Op) (string, error) {
	return strconv.Itoa(m.stack.Size()), nil
}

func (m *Machine) clear(Op) (string, error) {
	m.stack.Clear()

	return "", nil
}

func (m *Machine) display(Op) (string, error) {
	return m.stack.String(), nil
}

func (m *Machine) debug(Op) (string, error) {
	return m.stack.GoString(), nil
}
