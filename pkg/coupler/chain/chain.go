package chain

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/coupler/pkg/coupler"
	"github.com/ib-77/coupler/pkg/coupler/command"
	"github.com/ib-77/coupler/pkg/coupler/logger"
)

// Chain is an executable pipeline from In to Out. The intermediate types
// of the commands between head and tail are sealed inside the start
// closure, so a chain of any length needs only two type parameters.
type Chain[In, Out any] struct {
	start func(ctx context.Context, in In, eh command.ErrorHandler)
	tail  command.Tail[Out]
	steps int

	mu      sync.Mutex // guards awaited and the Await seal of the tail
	awaited bool
}

// New starts a chain at head.
func New[In, Out any](head command.Command[In, Out]) *Chain[In, Out] {
	if head == nil {
		panic("chain: New with nil command")
	}
	return &Chain[In, Out]{
		start: func(ctx context.Context, in In, eh command.ErrorHandler) {
			command.Execute(ctx, head, in, eh)
		},
		tail:  head,
		steps: 1,
	}
}

// Append links next after the chain's tail: the tail's continuation becomes
// "execute next with the produced output and the same error handler". The
// returned chain shares the head and owns the new tail.
//
// Append consumes c's tail slot, so appending to the same chain value twice
// panics. Extend the value Append returned instead.
func Append[In, Mid, Out any](c *Chain[In, Mid], next command.Command[Mid, Out]) *Chain[In, Out] {
	if c == nil {
		panic("chain: Append with nil chain")
	}
	if next == nil {
		panic("chain: Append with nil command")
	}
	c.tail.SetContinuation(func(ctx context.Context, mid Mid, eh command.ErrorHandler) {
		command.Execute(ctx, next, mid, eh)
	})
	return &Chain[In, Out]{
		start: c.start,
		tail:  next,
		steps: c.steps + 1,
	}
}

// AppendFunc extends the chain with a result-returning function.
func AppendFunc[In, Mid, Out any](c *Chain[In, Mid], fn func(ctx context.Context, in Mid) coupler.Result[Out]) *Chain[In, Out] {
	return Append[In, Mid, Out](c, command.NewFunc(fn))
}

// AppendTry extends the chain with a (value, error) function.
func AppendTry[In, Mid, Out any](c *Chain[In, Mid], fn func(ctx context.Context, in Mid) (Out, error)) *Chain[In, Out] {
	return Append[In, Mid, Out](c, command.NewTry(fn))
}

// AppendProc extends the chain with a side-effecting function. The step
// hands Empty to whatever is appended after it.
func AppendProc[In, Mid any](c *Chain[In, Mid], fn func(ctx context.Context, in Mid)) *Chain[In, command.Empty] {
	return Append[In, Mid, command.Empty](c, command.NewProc(fn))
}

// Execute starts the pipeline from its head. The handler receives the
// first failure raised by any step, exactly once; on an all-success run it
// is never invoked. Execution may outlive this call when commands finish
// their work on other goroutines.
//
// Each call stamps a fresh execution id into ctx unless one is already
// present, so log lines from concurrent executions stay attributable.
func (c *Chain[In, Out]) Execute(ctx context.Context, in In, eh command.ErrorHandler) {
	if eh == nil {
		panic("chain: Execute with nil error handler")
	}

	id, ok := command.ExecutionIDFrom(ctx)
	if !ok {
		id = uuid.New()
		ctx = command.WithExecutionID(ctx, id)
	}
	logger.Debug(command.LoggerFrom(ctx), "chain execution started",
		logger.With("execution_id", id), logger.With("steps", c.steps))

	c.start(ctx, in, eh)
}

// Run is the Execute convenience for chains whose head takes no input.
func Run[Out any](ctx context.Context, c *Chain[command.Empty, Out], eh command.ErrorHandler) {
	c.Execute(ctx, command.Empty{}, eh)
}

// Len reports how many commands the chain holds.
func (c *Chain[In, Out]) Len() int {
	return c.steps
}
