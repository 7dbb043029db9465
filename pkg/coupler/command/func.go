package command

import (
	"context"

	"github.com/ib-77/coupler/pkg/coupler"
)

// Func is a command backed by a plain function, for steps that do not
// deserve a named type of their own.
type Func[In, Out any] struct {
	Slot[Out]
	main func(ctx context.Context, in In, done func(res coupler.Result[Out]))
}

// NewFunc adapts a result-returning function into a command.
func NewFunc[In, Out any](fn func(ctx context.Context, in In) coupler.Result[Out]) *Func[In, Out] {
	if fn == nil {
		panic("command: NewFunc with nil function")
	}
	return &Func[In, Out]{main: func(ctx context.Context, in In, done func(res coupler.Result[Out])) {
		done(fn(ctx, in))
	}}
}

// NewTry adapts a (value, error) function into a command. A non-nil error
// becomes the failure outcome.
func NewTry[In, Out any](fn func(ctx context.Context, in In) (Out, error)) *Func[In, Out] {
	if fn == nil {
		panic("command: NewTry with nil function")
	}
	return &Func[In, Out]{main: func(ctx context.Context, in In, done func(res coupler.Result[Out])) {
		out, err := fn(ctx, in)
		if err != nil {
			done(coupler.Fail[Out](err))
			return
		}
		done(coupler.Success(out))
	}}
}

// NewProc adapts a side-effecting function with nothing to return. The step
// completes with Empty so execution can continue past it.
func NewProc[In any](fn func(ctx context.Context, in In)) *Func[In, Empty] {
	if fn == nil {
		panic("command: NewProc with nil function")
	}
	return &Func[In, Empty]{main: func(ctx context.Context, in In, done func(res coupler.Result[Empty])) {
		fn(ctx, in)
		done(coupler.Success(Empty{}))
	}}
}

// NewAsync adapts a completion-style function that may finish its work on
// another goroutine. The function owns the completion contract: it must
// invoke done exactly once.
func NewAsync[In, Out any](fn func(ctx context.Context, in In, done func(res coupler.Result[Out]))) *Func[In, Out] {
	if fn == nil {
		panic("command: NewAsync with nil function")
	}
	return &Func[In, Out]{main: fn}
}

// Main runs the adapted function.
func (f *Func[In, Out]) Main(ctx context.Context, in In, done func(res coupler.Result[Out])) {
	f.main(ctx, in, done)
}
