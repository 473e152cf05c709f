package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablesh/tablesh/core/table"
)

func TestPs(t *testing.T) {
	env, _ := newTestEnv("ps")

	got, err := Ps(env)
	require.NoError(t, err)

	assert.Equal(t, []string{"User", "Pid", "Cpu", "Memory", "Started", "Command"}, got.Headers())
	require.Equal(t, len(psSession), got.NumRows())

	assert.Equal(t, table.KindString, got.At(0, 0).Kind())
	assert.Equal(t, table.KindInt, got.At(0, 1).Kind())
	assert.Equal(t, table.KindFloat, got.At(0, 2).Kind())
	assert.Equal(t, table.KindSize, got.At(0, 3).Kind())
}

func TestPs_showAll(t *testing.T) {
	env, _ := newTestEnv("ps", "-a")

	got, err := Ps(env)
	require.NoError(t, err)

	require.Equal(t, len(psSystem)+len(psSession), got.NumRows())
	assert.Equal(t, "/sbin/init", got.At(0, 5).Text())
}

func TestPs_memoryIsComparable(t *testing.T) {
	env, _ := newTestEnv("ps", "-a")

	got, err := Ps(env)
	require.NoError(t, err)

	col, ok := got.Column("memory")
	require.True(t, ok)
	for i := 0; i < got.NumRows(); i++ {
		assert.Greater(t, got.At(i, col).Bytes(), int64(0))
	}
}
