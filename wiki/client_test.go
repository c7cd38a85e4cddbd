package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(ts *httptest.Server) *Client {
	return &Client{
		HTTPClient: ts.Client(),
		BaseURL:    ts.URL,
		UserAgent:  "eq-toolkit-test",
	}
}

func TestCategoryMembersFollowsContinuation(t *testing.T) {
	var queries []url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())

		if r.URL.Query().Get("cmcontinue") == "" {
			fmt.Fprint(w, `{"query":{"categorymembers":[{"title":"Magma Coat"},{"title":"Fire Axe"}]},"continue":{"cmcontinue":"page|next"}}`)

			return
		}

		fmt.Fprint(w, `{"query":{"categorymembers":[{"title":"Wand of Inferno"}]}}`)
	}))

	defer ts.Close()

	client := testClient(ts)

	titles, err := client.CategoryMembers(context.Background(), "Armors")
	require.NoError(t, err)

	assert.Equal(t, []string{"Magma Coat", "Fire Axe", "Wand of Inferno"}, titles)

	require.Len(t, queries, 2)
	assert.Equal(t, "Category:Armors", queries[0].Get("cmtitle"))
	assert.Equal(t, "0", queries[0].Get("cmnamespace"))
	assert.Equal(t, "page", queries[0].Get("cmtype"))
	assert.Equal(t, "page|next", queries[1].Get("cmcontinue"))
}

func TestPageHTML(t *testing.T) {
	var query url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()

		fmt.Fprint(w, `{"parse":{"text":{"*":"<p>You see a magma coat.</p>"}}}`)
	}))

	defer ts.Close()

	client := testClient(ts)

	rendered, err := client.PageHTML(context.Background(), "Magma_Coat")
	require.NoError(t, err)

	assert.Equal(t, "<p>You see a magma coat.</p>", rendered)
	assert.Equal(t, "parse", query.Get("action"))
	assert.Equal(t, "Magma_Coat", query.Get("page"))
}

func TestGetRejectsNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	defer ts.Close()

	client := testClient(ts)

	_, err := client.PageHTML(context.Background(), "Magma_Coat")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "status code 503")
}

func TestPageURL(t *testing.T) {
	client := &Client{BaseURL: DefaultBaseURL}

	assert.Equal(t, "https://tibia.fandom.com/wiki/Magma_Coat", client.PageURL("Magma_Coat"))
}
