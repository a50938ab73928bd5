package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/mock"
	owlslog "github.com/ranjeethpt/openowl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("logs type, method, chars and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Dispatcher{
			DispatchFn: func(ctx context.Context, page *openowl.Page) *openowl.ExtractedContent {
				return &openowl.ExtractedContent{
					URL:              page.URL,
					Title:            "PR #7",
					Type:             "github_pr",
					ExtractionMethod: openowl.MethodSiteSpecific,
					Content:          "PR: Fix race.",
				}
			},
		}

		d := owlslog.NewLoggingDispatcher(inner, logger)
		result := d.Dispatch(context.Background(), &openowl.Page{URL: "https://github.com/acme/widgets/pull/7"})

		require.NotNil(t, result)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "url=https://github.com/acme/widgets/pull/7")
		assert.Contains(t, output, "type=github_pr")
		assert.Contains(t, output, "method=site_specific")
		assert.Contains(t, output, "chars=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("handles nil page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Dispatcher{
			DispatchFn: func(ctx context.Context, page *openowl.Page) *openowl.ExtractedContent {
				return &openowl.ExtractedContent{
					Title:            openowl.DefaultTitle,
					Type:             openowl.TypeError,
					ExtractionMethod: openowl.MethodFallback,
				}
			},
		}

		d := owlslog.NewLoggingDispatcher(inner, logger)
		result := d.Dispatch(context.Background(), nil)

		require.NotNil(t, result)
		assert.Contains(t, buf.String(), "type=error")
	})
}
