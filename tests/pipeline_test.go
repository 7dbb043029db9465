package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/coupler/pkg/coupler"
	"github.com/ib-77/coupler/pkg/coupler/chain"
	"github.com/ib-77/coupler/pkg/coupler/command"
)

// TestArithmeticPipeline drives a pipeline end to end: two named commands,
// a function step, a formatting step and a terminal sink.
func TestArithmeticPipeline(t *testing.T) {
	pipeline, sunk := arithmeticPipeline(false)

	chain.Run(context.Background(), pipeline, func(_ context.Context, err error) {
		t.Errorf("unexpected failure: %v", err)
	})

	assert.Equal(t, "Result: 30", <-sunk)
}

// TestArithmeticPipelineFailure breaks the doubling step and checks the
// error lands in the handler while the downstream steps stay untouched.
func TestArithmeticPipelineFailure(t *testing.T) {
	pipeline, sunk := arithmeticPipeline(true)

	var handled []error
	chain.Run(context.Background(), pipeline, func(_ context.Context, err error) {
		handled = append(handled, err)
	})

	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], errDoubleBroken)
	assert.Empty(t, sunk)
}

// TestReportPipelineAwait runs a pipeline whose head completes on another
// goroutine and waits for the terminal value.
func TestReportPipelineAwait(t *testing.T) {
	fetch := command.NewAsync(func(_ context.Context, id int, done func(res coupler.Result[string])) {
		go func() {
			done(coupler.Success(fmt.Sprintf("record-%d", id)))
		}()
	})

	c := chain.New[int, string](fetch)
	upper := chain.AppendTry(c, func(_ context.Context, in string) (string, error) {
		if in == "" {
			return "", errors.New("empty record")
		}
		return strings.ToUpper(in), nil
	})

	got, err := chain.Await(context.Background(), upper, 7)
	require.NoError(t, err)
	assert.Equal(t, "RECORD-7", got)
}

// TestConcurrentPipelines builds an independent pipeline per goroutine and
// checks the executions do not interfere.
func TestConcurrentPipelines(t *testing.T) {
	group, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < 16; i++ {
		group.Go(func() error {
			square := chain.AppendFunc(
				chain.New[int, int](command.NewFunc(func(_ context.Context, in int) coupler.Result[int] {
					return coupler.Success(in * in)
				})),
				func(_ context.Context, in int) coupler.Result[string] {
					return coupler.Success(fmt.Sprintf("%d", in))
				},
			)

			got, err := chain.Await(ctx, square, i)
			if err != nil {
				return err
			}
			if want := fmt.Sprintf("%d", i*i); got != want {
				return fmt.Errorf("pipeline returned %q, want %q", got, want)
			}
			return nil
		})
	}

	assert.NoError(t, group.Wait())
}

func arithmeticPipeline(broken bool) (*chain.Chain[command.Empty, command.Empty], chan string) {
	sunk := make(chan string, 1)

	added := chain.New[command.Empty, int](&addCommand{a: 2, b: 3})
	doubled := chain.Append[command.Empty, int, int](added, &doubleCommand{broken: broken})
	tripled := chain.AppendFunc(doubled, func(_ context.Context, in int) coupler.Result[int] {
		return coupler.Success(in * 3)
	})
	formatted := chain.AppendFunc(tripled, func(_ context.Context, in int) coupler.Result[string] {
		return coupler.Success(fmt.Sprintf("Result: %d", in))
	})

	return chain.AppendProc(formatted, func(_ context.Context, in string) {
		sunk <- in
	}), sunk
}

type addCommand struct {
	command.Slot[int]

	a, b int
}

func (c *addCommand) Main(_ context.Context, _ command.Empty, done func(res coupler.Result[int])) {
	done(coupler.Success(c.a + c.b))
}

var errDoubleBroken = errors.New("double step broken")

type doubleCommand struct {
	command.Slot[int]

	broken bool
}

func (c *doubleCommand) Main(_ context.Context, in int, done func(res coupler.Result[int])) {
	if c.broken {
		done(coupler.Fail[int](errDoubleBroken))
		return
	}
	done(coupler.Success(in * 2))
}
