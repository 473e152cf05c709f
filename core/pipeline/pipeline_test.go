package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablesh/tablesh/core/table"
)

type captureRenderer struct {
	rendered *table.Table
	calls    int
}

func (c *captureRenderer) render(t *table.Table) error {
	c.rendered = t
	c.calls++
	return nil
}

func newTestExecutor(t *testing.T, render Renderer) *Executor {
	t.Helper()
	producers := map[string]Producer{
		"ls": func(args []string) (*table.Table, error) {
			return specTable(t), nil
		},
		"broken": func(args []string) (*table.Table, error) {
			return nil, errors.New("producer exploded")
		},
	}
	return NewExecutor(NewRegistry(), producers, render)
}

func TestExecutor_producerThenFilters(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	err := exec.Run([]Stage{
		{Name: "ls"},
		{Name: "where", Args: []string{"Size", ">", "1kb"}},
		{Name: "sort-by", Args: []string{"Size", "desc"}},
		{Name: "limit", Args: []string{"1"}},
	})
	require.NoError(t, err)

	require.Equal(t, 1, capture.calls)
	require.Equal(t, 1, capture.rendered.NumRows())
	assert.Equal(t, "b.log", capture.rendered.At(0, 0).Text())
}

func TestExecutor_producerOnly(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	require.NoError(t, exec.Run([]Stage{{Name: "ls"}}))
	assert.Equal(t, 3, capture.rendered.NumRows())
}

func TestExecutor_firstCommandMustProduce(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	err := exec.Run([]Stage{{Name: "echo"}, {Name: "limit", Args: []string{"1"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support piping")
	assert.Equal(t, 0, capture.calls, "nothing may render after an abort")
}

func TestExecutor_unknownFilterAborts(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	err := exec.Run([]Stage{{Name: "ls"}, {Name: "group-by", Args: []string{"Size"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
	assert.Equal(t, 0, capture.calls)
}

func TestExecutor_filterFailureAborts(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	err := exec.Run([]Stage{
		{Name: "ls"},
		{Name: "where", Args: []string{"Owner", "==", "root"}},
		{Name: "limit", Args: []string{"1"}},
	})
	require.Error(t, err)
	assert.Equal(t, 0, capture.calls)
}

func TestExecutor_producerFailureAborts(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	err := exec.Run([]Stage{{Name: "broken"}})
	require.Error(t, err)
	assert.Equal(t, 0, capture.calls)
}

func TestExecutor_emptyPipelineIsANoOp(t *testing.T) {
	capture := &captureRenderer{}
	exec := newTestExecutor(t, capture.render)

	require.NoError(t, exec.Run(nil))
	assert.Equal(t, 0, capture.calls)
}

func TestExecutor_canProduce(t *testing.T) {
	exec := newTestExecutor(t, (&captureRenderer{}).render)
	assert.True(t, exec.CanProduce("ls"))
	assert.False(t, exec.CanProduce("echo"))
}

func TestRegistry_lookupIsCaseSensitive(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Lookup("where")
	assert.True(t, ok)
	_, ok = registry.Lookup("Where")
	assert.False(t, ok)
	_, ok = registry.Lookup("WHERE")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"where", "sort-by", "select", "contains", "limit"}, registry.Names())
}
