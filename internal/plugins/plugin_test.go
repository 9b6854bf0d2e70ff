package plugins

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/core/testfixtures"
	"github.com/czokomaster/czokomaster/internal/ui"
)

func TestOrdered(t *testing.T) {
	assert.Equal(t, domain.TargetSet{"base", "b", "a"}, Ordered(domain.TargetSet{"b", "base", "a"}))
	assert.Equal(t, domain.TargetSet{"b", "a"}, Ordered(domain.TargetSet{"b", "a"}))
	assert.Empty(t, Ordered(nil))
}

func TestOrdered_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		targets := domain.TargetSet(rapid.SliceOf(rapid.SampledFrom([]string{"base", "www", "db", "mail"})).Draw(t, "targets"))
		ordered := Ordered(targets)

		jails := targets.WithoutBase()
		if targets.HasBase() {
			if len(ordered) == 0 || ordered[0] != domain.BaseTarget {
				t.Fatalf("base not first: %v", ordered)
			}
			ordered = ordered[1:]
		}
		if len(ordered) != len(jails) {
			t.Fatalf("got %v, want jails %v", ordered, jails)
		}
		for i := range jails {
			if ordered[i] != jails[i] {
				t.Fatalf("jail order changed: %v vs %v", ordered, jails)
			}
		}
	})
}

func TestStream(t *testing.T) {
	ctx := context.Background()

	t.Run("all_succeed", func(t *testing.T) {
		executor := testfixtures.NewRecordingExecutor()
		require.NoError(t, Stream(ctx, executor, "a", "b"))
		assert.Equal(t, []string{"a", "b"}, executor.Streamed())
	})

	t.Run("failures_joined", func(t *testing.T) {
		executor := testfixtures.NewRecordingExecutor().
			WithFailure("a", 2, "").
			WithFailure("c", 1, "")

		err := Stream(ctx, executor, "a", "b", "c")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"a" exited with code 2`)
		assert.Contains(t, err.Error(), `"c" exited with code 1`)
		assert.Equal(t, []string{"a", "b", "c"}, executor.Streamed())
	})

	t.Run("executor_error", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, Stream(ctx, testfixtures.NewRecordingExecutor().WithError(boom), "a"), boom)
	})
}

func TestCapture(t *testing.T) {
	executor := testfixtures.NewRecordingExecutor().
		WithOutput("list", "one\ntwo\n").
		WithFailure("broken", 3, "nope")

	output, err := Capture(context.Background(), executor, "list")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(output))

	_, err = Capture(context.Background(), executor, "broken")
	require.Error(t, err)
	assert.Equal(t, `"broken" exited with code 3: nope`, err.Error())
}

func TestCapture_FailureKeepsOutput(t *testing.T) {
	executor := &scriptedExecutor{result: domain.Result{
		Command:  "partial",
		Stdout:   []byte("one\n"),
		Stderr:   []byte("jexec: jail not found\n"),
		ExitCode: 1,
	}}

	output, err := Capture(context.Background(), executor, "partial")
	require.Error(t, err)
	assert.Equal(t, "one\n", string(output))
	assert.Contains(t, err.Error(), "jexec: jail not found")
}

type scriptedExecutor struct {
	result domain.Result
}

func (e *scriptedExecutor) Execute(ctx context.Context, req domain.ExecutionRequest) ([]domain.Result, error) {
	return []domain.Result{e.result}, nil
}

func TestFailures_Report(t *testing.T) {
	out := &bytes.Buffer{}
	logger, hook := test.NewNullLogger()

	var failures Failures
	failures.Add("base", nil)
	failures.Add("base", errors.New("exit 1"))
	failures.Add("www", errors.New("no cache"))
	failures.Report(ui.NewConsole(out), logrus.NewEntry(logger))

	assert.Equal(t, 2, failures.Len())
	assert.Equal(t,
		"==> Failed targets:\n-> the base system: exit 1\n-> www: no cache\n\n",
		out.String())
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "www", hook.LastEntry().Data["target"])
}

func TestFailures_ReportEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	var failures Failures
	failures.Report(ui.NewConsole(out), logrus.NewEntry(logrus.New()))
	assert.Empty(t, out.String())
}
