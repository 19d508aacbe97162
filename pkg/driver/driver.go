package driver

import (
	"context"
	"log/slog"

	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/internal/config"
	"github.com/larynjahor/lifo/pkg/machine"
)

type Request struct {
	Ops []machine.Op `json:"ops"`
}

type Response struct {
	Results []machine.Result `json:"results"`

	// Values holds the final contents, bottom first.
	Values []string `json:"values"`

	Display string `json:"display"`
	Debug   string `json:"debug"`
	Size    int    `json:"size"`
}

func New(cfg config.Config) *Driver {
	return &Driver{
		Capacity: cfg.Capacity,
		Strict:   cfg.Strict,
	}
}

type Driver struct {
	Capacity int
	Strict   bool
}

// Do runs req against a fresh stack. On failure the partial response is
// returned together with the error.
func (d *Driver) Do(ctx context.Context, req *Request) (*Response, error) {
	m := machine.New(container.NewStackSize[string](d.Capacity), d.Strict)

	slog.DebugContext(ctx, "running request", slog.Int("ops", len(req.Ops)), slog.Bool("strict", d.Strict))

	results, err := m.Run(ctx, req.Ops)

	stack := m.Stack()

	resp := &Response{
		Results: results,
		Values:  stack.Values(),
		Display: stack.String(),
		Debug:   stack.GoString(),
		Size:    stack.Size(),
	}

	if err != nil {
		slog.ErrorContext(ctx, "request failed", slog.Any("err", err), slog.Int("applied", len(results)))

		return resp, err
	}

	return resp, nil
}
