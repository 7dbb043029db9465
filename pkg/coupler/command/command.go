package command

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/coupler/pkg/coupler"
	"github.com/ib-77/coupler/pkg/coupler/logger"
)

// Empty is the placeholder input or output for commands that consume or
// produce no meaningful data: heads triggered without arguments,
// side-effecting steps, terminal sinks.
type Empty struct{}

// ErrorHandler consumes the first failure raised anywhere in a chain.
// It is invoked at most once per execution and never on the success path.
type ErrorHandler func(ctx context.Context, err error)

// Continuation runs the next step with a finished command's output,
// propagating the execution's error handler.
type Continuation[Out any] func(ctx context.Context, out Out, eh ErrorHandler)

// Tail is the append-side view of a command. Only the output side matters
// when deciding what runs next, so composition code can hold the last
// command of a pipeline without knowing its input type.
type Tail[Out any] interface {
	// SetContinuation installs what runs after this command succeeds.
	// The slot is set-once; installing a second continuation panics.
	SetContinuation(next Continuation[Out])
	// Continuation returns the installed continuation, or nil for a
	// command at the end of its pipeline.
	Continuation() Continuation[Out]
}

// Command is a single typed unit of work. Implementations embed Slot[Out]
// for the Tail side and define Main.
type Command[In, Out any] interface {
	Tail[Out]

	// Main performs the command's work and reports the outcome through
	// done. Main may return before the work finishes and invoke done from
	// another goroutine, but it must invoke done exactly once. A Main
	// that never invokes done stalls its pipeline: there is no built-in
	// timeout.
	Main(ctx context.Context, in In, done func(res coupler.Result[Out]))
}

// Slot is the embeddable set-once continuation holder. The zero value is
// ready to use. Slot is not synchronized: pipelines are composed before
// they are executed, never during.
type Slot[Out any] struct {
	next Continuation[Out]
	set  bool
}

// SetContinuation installs next; a second call panics.
func (s *Slot[Out]) SetContinuation(next Continuation[Out]) {
	if s.set {
		panic("command: continuation already set")
	}
	if next == nil {
		panic("command: nil continuation")
	}
	s.next = next
	s.set = true
}

// Continuation returns the installed continuation, or nil.
func (s *Slot[Out]) Continuation() Continuation[Out] {
	return s.next
}

// Execute runs one command and routes its outcome: success goes to the
// command's continuation with the same handler, failure goes to eh. A
// success with no continuation installed is silently terminal. Duplicate
// completions are dropped and logged. A completion that is neither success
// nor failure (the zero Result, or a failure with a nil error) panics.
func Execute[In, Out any](ctx context.Context, cmd Command[In, Out], in In, eh ErrorHandler) {
	if cmd == nil {
		panic("command: Execute with nil command")
	}
	if eh == nil {
		panic("command: Execute with nil error handler")
	}

	cmd.Main(ctx, in, completion(ctx, func(res coupler.Result[Out]) {
		if res.IsEmpty() {
			panic("command: completion with an empty result, report Success or Fail")
		}

		l := LoggerFrom(ctx)
		if res.IsSuccess() {
			logger.Debug(l, "command succeeded", executionFields(ctx)...)
			if next := cmd.Continuation(); next != nil {
				next(ctx, res.Result(), eh)
			}
			return
		}

		logger.Debug(l, "command failed",
			append(executionFields(ctx), logger.With("err", res.Err()))...)
		eh(ctx, res.Err())
	}))
}

// Launch is the Execute convenience for commands that take no input.
func Launch[Out any](ctx context.Context, cmd Command[Empty, Out], eh ErrorHandler) {
	Execute(ctx, cmd, Empty{}, eh)
}

// completion wraps deliver in a one-shot guard so a misbehaving Main that
// reports twice cannot run the rest of the pipeline twice.
func completion[Out any](ctx context.Context, deliver func(res coupler.Result[Out])) func(res coupler.Result[Out]) {
	var fired atomic.Bool
	return func(res coupler.Result[Out]) {
		if !fired.CompareAndSwap(false, true) {
			logger.Error(LoggerFrom(ctx), "dropped duplicate command completion",
				executionFields(ctx)...)
			return
		}
		deliver(res)
	}
}
