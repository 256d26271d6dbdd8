package coverart

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const volumesPattern = `=~^https://www\.googleapis\.com/books/v1/volumes`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(zap.NewNop(), 100)
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("returns thumbnail from first volume", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{
				"totalItems": 1,
				"items": [
					{"volumeInfo": {"imageLinks": {"thumbnail": "https://books.example/cover.jpg"}}}
				]
			}`))

		got := c.Lookup(ctx, "9780261103344")
		assert.Equal(t, "https://books.example/cover.jpg", got)
	})

	t.Run("zero results yields placeholder", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{"totalItems": 0}`))

		assert.Equal(t, PlaceholderURL, c.Lookup(ctx, "0000000000000"))
	})

	t.Run("missing image links yields placeholder", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{
				"totalItems": 1,
				"items": [{"volumeInfo": {}}]
			}`))

		assert.Equal(t, PlaceholderURL, c.Lookup(ctx, "9780261103344"))
	})

	t.Run("malformed response yields placeholder", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{"totalItems": `))

		assert.Equal(t, PlaceholderURL, c.Lookup(ctx, "9780261103344"))
	})

	t.Run("server error yields placeholder", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(500, "boom"))

		assert.Equal(t, PlaceholderURL, c.Lookup(ctx, "9780261103344"))
	})

	t.Run("network error yields placeholder", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewErrorResponder(assert.AnError))

		assert.Equal(t, PlaceholderURL, c.Lookup(ctx, "9780261103344"))
	})

	t.Run("successful lookups are cached", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{
				"totalItems": 1,
				"items": [
					{"volumeInfo": {"imageLinks": {"thumbnail": "https://books.example/cover.jpg"}}}
				]
			}`))

		c.Lookup(ctx, "9780261103344")
		c.Lookup(ctx, "9780261103344")
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})

	t.Run("placeholder results are not cached", func(t *testing.T) {
		c := newTestClient(t)
		httpmock.RegisterResponder("GET", volumesPattern,
			httpmock.NewStringResponder(200, `{"totalItems": 0}`))

		c.Lookup(ctx, "0000000000000")
		c.Lookup(ctx, "0000000000000")
		assert.Equal(t, 2, httpmock.GetTotalCallCount())
	})
}
