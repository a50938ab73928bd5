package goquery_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/goquery"
	"github.com/ranjeethpt/openowl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeVariant(name string, domains []string) *mock.Extractor {
	return &mock.Extractor{
		NameFn:    func() string { return name },
		DomainsFn: func() []string { return domains },
		ExtractFn: func(page *openowl.Page) *openowl.ExtractedContent {
			return goquery.BuildResult(page, name, name, openowl.MethodSiteSpecific, "from "+name, nil)
		},
	}
}

func TestRegistry_Match(t *testing.T) {
	t.Parallel()

	t.Run("selects variant by domain including subdomains", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		assert.Equal(t, "github", registry.Match("https://github.com/golang/go/pull/1").Name())
		assert.Equal(t, "gmail", registry.Match("https://mail.google.com/mail/u/0/").Name())
		assert.Equal(t, "atlassian", registry.Match("https://acme.atlassian.net/browse/ACME-1").Name())
	})

	t.Run("falls back to generic for unknown domains", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		assert.Equal(t, "generic", registry.Match("https://random-blog.example/post").Name())
	})

	t.Run("earliest listed variant wins on overlapping domain sets", func(t *testing.T) {
		t.Parallel()

		first := fakeVariant("first", []string{"overlap.test"})
		second := fakeVariant("second", []string{"overlap.test"})
		registry := goquery.NewRegistry(goquery.WithVariants(first, second))

		got := registry.Match("https://overlap.test/page")

		assert.Equal(t, "first", got.Name())
	})
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("returns the matched variant's result as-is", func(t *testing.T) {
		t.Parallel()

		variant := fakeVariant("site", []string{"site.test"})
		registry := goquery.NewRegistry(goquery.WithVariants(variant))

		res := registry.Dispatch(context.Background(), &openowl.Page{URL: "https://site.test/x", HTML: "<html></html>"})

		require.NotNil(t, res)
		assert.Equal(t, "from site", res.Content)
		assert.Equal(t, openowl.MethodSiteSpecific, res.ExtractionMethod)
	})

	t.Run("a hanging variant yields an error record within the budget", func(t *testing.T) {
		t.Parallel()

		hang := &mock.Extractor{
			NameFn:    func() string { return "hang" },
			DomainsFn: func() []string { return []string{"hang.test"} },
			ExtractFn: func(page *openowl.Page) *openowl.ExtractedContent {
				select {} // never returns
			},
		}
		registry := goquery.NewRegistry(
			goquery.WithVariants(hang),
			goquery.WithExtractBudget(50*time.Millisecond),
		)

		start := time.Now()
		res := registry.Dispatch(context.Background(), &openowl.Page{URL: "https://hang.test/x"})

		require.NotNil(t, res)
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, openowl.TypeError, res.Type)
		assert.Equal(t, openowl.MethodFallback, res.ExtractionMethod)
		assert.Contains(t, res.Meta("error"), "timeout")
	})

	t.Run("a panicking variant yields an error record", func(t *testing.T) {
		t.Parallel()

		boom := &mock.Extractor{
			NameFn:    func() string { return "boom" },
			DomainsFn: func() []string { return []string{"boom.test"} },
			ExtractFn: func(page *openowl.Page) *openowl.ExtractedContent {
				panic("selector blew up")
			},
		}
		registry := goquery.NewRegistry(goquery.WithVariants(boom))

		res := registry.Dispatch(context.Background(), &openowl.Page{URL: "https://boom.test/x"})

		require.NotNil(t, res)
		assert.Equal(t, openowl.TypeError, res.Type)
		assert.Equal(t, openowl.MethodFallback, res.ExtractionMethod)
		assert.Contains(t, res.Meta("error"), "panic")
	})

	t.Run("unparseable or empty URL yields an error record", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		res := registry.Dispatch(context.Background(), &openowl.Page{URL: ""})

		require.NotNil(t, res)
		assert.Equal(t, openowl.TypeError, res.Type)
	})

	t.Run("nil page yields an error record instead of a panic", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		res := registry.Dispatch(context.Background(), nil)

		require.NotNil(t, res)
		assert.Equal(t, openowl.TypeError, res.Type)
		assert.Equal(t, openowl.MethodFallback, res.ExtractionMethod)
	})

	t.Run("unknown site with an article runs the generic layer 1 end to end", func(t *testing.T) {
		t.Parallel()

		lorem := strings.Repeat("lorem ipsum dolor sit amet ", 12) // ~300 chars
		html := "<html><head><title>A Post</title></head><body><article>" + lorem + "</article></body></html>"
		registry := goquery.NewRegistry()

		res := registry.Dispatch(context.Background(), &openowl.Page{URL: "https://random-blog.example/post", HTML: html})

		require.NotNil(t, res)
		assert.Equal(t, openowl.MethodGeneric, res.ExtractionMethod)
		assert.Equal(t, "1", res.Meta("layer"))
		assert.Equal(t, goquery.CleanText(lorem), res.Content)
		assert.NotContains(t, res.Content, "<")
	})
}
