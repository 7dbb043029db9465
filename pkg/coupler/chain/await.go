package chain

import (
	"context"

	"github.com/ib-77/coupler/pkg/coupler/command"
)

type awaitOutcome[Out any] struct {
	out Out
	err error
}

// replyKey carries a per-execution delivery channel in ctx, keyed by the
// awaited chain handle so pipelines sharing a terminal type never read
// each other's replies.
type replyKey struct{ handle any }

func (c *Chain[In, Out]) withReply(ctx context.Context, ch chan<- awaitOutcome[Out]) context.Context {
	return context.WithValue(ctx, replyKey{handle: c}, ch)
}

func (c *Chain[In, Out]) replyFrom(ctx context.Context) (chan<- awaitOutcome[Out], bool) {
	ch, ok := ctx.Value(replyKey{handle: c}).(chan<- awaitOutcome[Out])
	return ch, ok
}

// seal installs the terminal delivery continuation on first use; racing
// first Awaits serialize on the chain mutex.
func (c *Chain[In, Out]) seal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.awaited {
		return
	}
	if c.tail.Continuation() != nil {
		panic("chain: Await on a chain whose tail is already wired")
	}
	c.tail.SetContinuation(func(ctx context.Context, out Out, _ command.ErrorHandler) {
		if reply, ok := c.replyFrom(ctx); ok {
			reply <- awaitOutcome[Out]{out: out}
		}
	})
	c.awaited = true
}

// Await starts the pipeline and blocks until the terminal output or the
// first failure arrives, or ctx is done. A done ctx only stops the
// waiting; steps already running still finish on their own.
//
// The first Await on a chain installs a delivery continuation on the tail,
// sealing it: append every step before awaiting. Executions share the
// installed continuation and are distinguished by a per-call channel
// carried in ctx, so a chain can be awaited many times, concurrently,
// first callers included.
func Await[In, Out any](ctx context.Context, c *Chain[In, Out], in In) (Out, error) {
	if c == nil {
		panic("chain: Await with nil chain")
	}

	c.seal()

	reply := make(chan awaitOutcome[Out], 1)
	ctx = c.withReply(ctx, reply)

	c.Execute(ctx, in, func(_ context.Context, err error) {
		reply <- awaitOutcome[Out]{err: err}
	})

	select {
	case o := <-reply:
		return o.out, o.err
	case <-ctx.Done():
		var zero Out
		return zero, ctx.Err()
	}
}
