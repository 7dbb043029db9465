package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// scenarioTimeout bounds how long AssertOn waits for a completion before
// declaring that the command hung without invoking its callback.
const scenarioTimeout = 5 * time.Second

// Scenario is the entrypoint of the command scenario API, a When/Then test
// harness that drives a real execution of cmd and asserts on where the
// outcome was routed.
//
// The scenario installs its own capture continuation, so cmd must not be
// wired into a pipeline already.
func Scenario[In, Out any](cmd Command[In, Out]) ScenarioInit[In, Out] {
	return ScenarioInit[In, Out]{cmd: cmd}
}

// ScenarioInit is the scenario builder state produced by Scenario.
type ScenarioInit[In, Out any] struct {
	cmd Command[In, Out]
}

// When provides the input the command will be executed with.
func (sc ScenarioInit[In, Out]) When(in In) ScenarioWhen[In, Out] {
	return ScenarioWhen[In, Out]{ScenarioInit: sc, in: in}
}

// ScenarioWhen is the scenario builder state produced by When.
type ScenarioWhen[In, Out any] struct {
	ScenarioInit[In, Out]

	in In
}

// ThenSucceeds expects the continuation to receive exactly out, with the
// error handler never invoked.
func (sc ScenarioWhen[In, Out]) ThenSucceeds(out Out) ScenarioThen[In, Out] {
	return ScenarioThen[In, Out]{ScenarioWhen: sc, want: out}
}

// ThenFails expects the error handler to receive an error matching err,
// with the continuation never invoked.
func (sc ScenarioWhen[In, Out]) ThenFails(err error) ScenarioThen[In, Out] {
	return ScenarioThen[In, Out]{ScenarioWhen: sc, wantFailure: true, wantErr: err}
}

// ThenFailsAny expects the error handler to be invoked, without asserting
// on the error itself.
func (sc ScenarioWhen[In, Out]) ThenFailsAny() ScenarioThen[In, Out] {
	return ScenarioThen[In, Out]{ScenarioWhen: sc, wantFailure: true}
}

// ScenarioThen is the scenario builder state produced by the Then methods.
type ScenarioThen[In, Out any] struct {
	ScenarioWhen[In, Out]

	want        Out
	wantErr     error
	wantFailure bool
}

type scenarioOutcome[Out any] struct {
	out    Out
	err    error
	failed bool
}

// AssertOn executes the command and asserts the expected routing. It waits
// for asynchronous commands to complete, failing the test if no completion
// arrives within the scenario timeout.
func (sc ScenarioThen[In, Out]) AssertOn(t *testing.T) {
	t.Helper()

	outcomes := make(chan scenarioOutcome[Out], 1)

	sc.cmd.SetContinuation(func(_ context.Context, out Out, _ ErrorHandler) {
		outcomes <- scenarioOutcome[Out]{out: out}
	})

	ctx, cancel := context.WithTimeout(context.Background(), scenarioTimeout)
	defer cancel()

	Execute(ctx, sc.cmd, sc.in, func(_ context.Context, err error) {
		outcomes <- scenarioOutcome[Out]{err: err, failed: true}
	})

	select {
	case got := <-outcomes:
		if sc.wantFailure {
			if !assert.True(t, got.failed, "expected the error handler to run, continuation received %v", got.out) {
				return
			}
			if sc.wantErr != nil {
				assert.ErrorIs(t, got.err, sc.wantErr)
			}
			return
		}
		if !assert.False(t, got.failed, "expected success, error handler received %v", got.err) {
			return
		}
		assert.Equal(t, sc.want, got.out)
	case <-ctx.Done():
		t.Fatalf("command did not complete within %s", scenarioTimeout)
	}
}
