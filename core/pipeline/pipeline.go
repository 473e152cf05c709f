// Package pipeline implements the structured-data pipeline: a closed set of
// relational-style filters over typed tables and the executor that threads a
// table from a producing command through each filter to the renderer.
package pipeline

import (
	"fmt"

	"github.com/tablesh/tablesh/core/table"
)

// Filter is one pipeline stage: a pure function from a table (plus its
// argument vector) to a new table or an error. Filters never mutate their
// input.
type Filter func(t *table.Table, args []string) (*table.Table, error)

// Registry is the immutable mapping from filter names to implementations.
// It is built once at startup and only read afterwards. Lookups are
// case-sensitive and exact.
type Registry struct {
	filters map[string]Filter
}

// NewRegistry builds the registry with the fixed filter set.
func NewRegistry() *Registry {
	return &Registry{
		filters: map[string]Filter{
			"where":    Where,
			"sort-by":  SortBy,
			"select":   Select,
			"contains": Contains,
			"limit":    Limit,
		},
	}
}

// Lookup resolves a filter name.
func (r *Registry) Lookup(name string) (Filter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// Names returns the registered filter names, unordered.
func (r *Registry) Names() []string {
	var out []string
	for name := range r.filters {
		out = append(out, name)
	}
	return out
}

// Producer builds the initial table of a pipeline from its argument vector.
// Directory and process listings are producers; the executor treats them as
// opaque suppliers.
type Producer func(args []string) (*table.Table, error)

// Renderer consumes the final table of a successful pipeline.
type Renderer func(t *table.Table) error

// Stage is one tokenized command invocation within a pipeline.
type Stage struct {
	Name string
	Args []string
}

// Executor runs linear pipelines: one producer stage followed by zero or
// more filter stages. Exactly one table is alive at any point; each
// transition hands ownership of a fresh table forward and drops the old one,
// so aborting at any stage leaves nothing half-mutated.
type Executor struct {
	registry  *Registry
	producers map[string]Producer
	render    Renderer
}

// NewExecutor wires an executor. The producer map is captured as-is and must
// not be mutated afterwards.
func NewExecutor(registry *Registry, producers map[string]Producer, render Renderer) *Executor {
	return &Executor{
		registry:  registry,
		producers: producers,
		render:    render,
	}
}

// CanProduce reports whether name is a data-producing command.
func (e *Executor) CanProduce(name string) bool {
	_, ok := e.producers[name]
	return ok
}

// Run executes the stages as one pipeline. On any failure the held table is
// discarded, no output is rendered, and the error describes the failing
// stage. A successful run hands the final table to the renderer.
func (e *Executor) Run(stages []Stage) error {
	if len(stages) == 0 {
		return nil
	}

	// Start: only a fixed set of commands can head a pipeline.
	first := stages[0]
	produce, ok := e.producers[first.Name]
	if !ok {
		return fmt.Errorf("%s: command does not support piping", first.Name)
	}

	held, err := produce(first.Args)
	if err != nil {
		return fmt.Errorf("%s: %w", first.Name, err)
	}

	// Flowing: each filter consumes the held table and yields its successor.
	for _, stage := range stages[1:] {
		filter, ok := e.registry.Lookup(stage.Name)
		if !ok {
			return fmt.Errorf("%s: unknown filter", stage.Name)
		}

		next, err := filter(held, stage.Args)
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name, err)
		}
		held = next
	}

	// Done: the last table goes to the renderer.
	return e.render(held)
}
