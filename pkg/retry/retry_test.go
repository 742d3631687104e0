package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	type testCase struct {
		name      string
		policy    Policy
		failures  int
		wantCalls int
		wantErr   error
		wantRes   string
	}

	tests := []testCase{
		{
			name:      "success on first attempt",
			policy:    Immediate(1),
			failures:  0,
			wantCalls: 1,
			wantRes:   "ok",
		},
		{
			name:      "success after one retry",
			policy:    Immediate(1),
			failures:  1,
			wantCalls: 2,
			wantRes:   "ok",
		},
		{
			name:      "fails after initial attempt and one retry",
			policy:    Immediate(1),
			failures:  5,
			wantCalls: 2,
			wantErr:   errBoom,
		},
		{
			name:      "zero retries means single attempt",
			policy:    Immediate(0),
			failures:  1,
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{
			name:      "backoff policy still bounded",
			policy:    Policy{MaxRetries: 2, Backoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond},
			failures:  5,
			wantCalls: 3,
			wantErr:   errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			res, err := Do(context.Background(), tt.policy, func(ctx context.Context) (string, error) {
				calls++
				if calls <= tt.failures {
					return "", errBoom
				}
				return "ok", nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, res)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRes, res)
		})
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, Immediate(3), func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("unreachable")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
