package watch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays removes backoff waits so retry tests run instantly.
var noDelays = []time.Duration{0, 0, 0}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns page on first success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, url string) (*openowl.Page, error) {
			attempts++
			return &openowl.Page{URL: url, HTML: "<html>ok</html>"}, nil
		}

		page, err := watch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)

		assert.Equal(t, "<html>ok</html>", page.HTML)
		assert.Equal(t, 1, attempts, "should not retry after success")
	})

	t.Run("retries on failure and succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(_ context.Context, url string) (*openowl.Page, error) {
			attempts++
			if attempts < 3 {
				return nil, errors.New("transient error")
			}
			return &openowl.Page{URL: url, HTML: "recovered"}, nil
		}

		page, err := watch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)

		assert.Equal(t, "recovered", page.HTML)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error when all attempts fail", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		lastErr := errors.New("persistent failure")
		fetch := func(context.Context, string) (*openowl.Page, error) {
			attempts++
			return nil, lastErr
		}

		page, err := watch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		assert.ErrorIs(t, err, lastErr)
		assert.Nil(t, page)
		assert.Equal(t, 4, attempts, "1 initial + 3 retries")
	})

	t.Run("stops retrying when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(context.Context, string) (*openowl.Page, error) {
			cancel()
			return nil, errors.New("failed")
		}

		_, err := watch.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}
		fetch := func(context.Context, string) (*openowl.Page, error) {
			return nil, errors.New("boom")
		}

		_, err := watch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)
		require.Error(t, err)

		require.Len(t, logged, 3, "one log line per retry")
		assert.Contains(t, logged[0], "https://example.com")
		assert.Contains(t, logged[0], "attempt 2")
	})

	t.Run("empty delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(context.Context, string) (*openowl.Page, error) {
			attempts++
			return nil, errors.New("failed")
		}

		_, err := watch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := watch.DefaultRetryDelays()
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
