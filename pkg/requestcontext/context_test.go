package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()

	t.Run("zero values when unset", func(t *testing.T) {
		assert.Empty(t, RequestID(ctx))
		assert.Empty(t, ClientIP(ctx))
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})

	t.Run("round trips injected values", func(t *testing.T) {
		fixed := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
		ctx := WithTime(WithClientIP(WithRequestID(ctx, "req-1"), "10.0.0.1"), fixed)
		assert.Equal(t, "req-1", RequestID(ctx))
		assert.Equal(t, "10.0.0.1", ClientIP(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})
}
