package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type greetCommand struct {
	Name string
}

func (c greetCommand) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type otherCommand struct{}

func (otherCommand) Validate() error { return nil }

func greet(ctx context.Context, cmd greetCommand) (string, error) {
	return "hello " + cmd.Name, nil
}

func TestCommandBus_Send(t *testing.T) {
	b := NewCommandBus(LoggingMiddleware(zap.NewNop()))
	require.NoError(t, b.Register(greetCommand{}, Typed(greet)))

	result, err := b.Send(context.Background(), greetCommand{Name: "Erica"})

	require.NoError(t, err)
	assert.Equal(t, "hello Erica", result)
}

func TestCommandBus_RegisterTwice(t *testing.T) {
	b := NewCommandBus()
	require.NoError(t, b.Register(greetCommand{}, Typed(greet)))

	assert.Error(t, b.Register(greetCommand{}, Typed(greet)))
}

func TestCommandBus_Errors(t *testing.T) {
	failure := errors.New("boom")
	b := NewCommandBus()
	require.NoError(t, b.Register(greetCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return nil, failure
	})))

	_, err := b.Send(context.Background(), greetCommand{})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = b.Send(context.Background(), otherCommand{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)

	_, err = b.Send(context.Background(), greetCommand{Name: "Jax"})
	assert.ErrorIs(t, err, ErrExecutionFailed)
	assert.ErrorIs(t, err, failure)
}

func TestPipeline_Order(t *testing.T) {
	var calls []string
	trace := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
				calls = append(calls, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	b := NewCommandBus(trace("outer"), trace("inner"))
	require.NoError(t, b.Register(greetCommand{}, Typed(greet)))

	_, err := b.Send(context.Background(), greetCommand{Name: "Rex"})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, calls)
}
