package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/vector/internal/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := execute(t, "--markdown", "push:1", "push:2", "push:3")
	require.NoError(t, err)
	assert.Contains(t, out, "push:3")
	assert.Contains(t, out, "[1 2 3]")
}

func TestRootCommandInit(t *testing.T) {
	out, err := execute(t, "--init", "1,2,3", "--markdown", "--no-contents", "resize:0", "resize:5")
	require.NoError(t, err)
	assert.Contains(t, out, "resize:5")
	assert.NotContains(t, out, "[0 0 0 0 0]")
}

func TestRootCommandErrors(t *testing.T) {
	t.Run("no operations", func(t *testing.T) {
		_, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("bad syntax", func(t *testing.T) {
		_, err := execute(t, "push")
		assert.ErrorIs(t, err, trace.ErrSyntax)
	})

	t.Run("negative reserve", func(t *testing.T) {
		_, err := execute(t, "--reserve", "-1", "pop")
		assert.EqualError(t, err, "--reserve must not be negative, got -1")
	})

	t.Run("precondition renders completed steps", func(t *testing.T) {
		out, err := execute(t, "--markdown", "push:4", "erase:3")
		assert.ErrorIs(t, err, trace.ErrPrecondition)
		assert.Contains(t, out, "push:4")
	})
}

func TestExecute(t *testing.T) {
	assert.NoError(t, Execute(context.Background(), "1.0.0", []string{"--no-contents", "reserve:2", "clear"}))
	assert.ErrorIs(t, Execute(context.Background(), "1.0.0", []string{"pop"}), trace.ErrPrecondition)
}
