package scratch

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/apierr"
	"github.com/Alp4ka/s2pager/parser"
)

// jsonOf builds an object from path/value pairs.
func jsonOf(t *testing.T, pairs ...any) string {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must be even")

	doc := `{}`
	for i := 0; i < len(pairs); i += 2 {
		var err error
		doc, err = sjson.Set(doc, pairs[i].(string), pairs[i+1])
		require.NoError(t, err)
	}

	return doc
}

func nodeOf(t *testing.T, pairs ...any) parser.Parser {
	t.Helper()

	p, err := parser.ParseString(jsonOf(t, pairs...))
	require.NoError(t, err)
	return p
}

func userJSON(t *testing.T, id int, name string) string {
	return jsonOf(t,
		"id", id,
		"username", name,
		"scratchteam", false,
		"history.joined", "2012-10-24T17:48:52.000Z",
		"profile.id", id+1000,
		"profile.images.90x90", "https://cdn2.scratch.mit.edu/get_image/user/90x90.png",
		"profile.images.60x60", "https://cdn2.scratch.mit.edu/get_image/user/60x60.png",
		"profile.images.55x55", "https://cdn2.scratch.mit.edu/get_image/user/55x55.png",
		"profile.images.50x50", "https://cdn2.scratch.mit.edu/get_image/user/50x50.png",
		"profile.images.32x32", "https://cdn2.scratch.mit.edu/get_image/user/32x32.png",
		"profile.status", "making games",
		"profile.bio", "hi",
		"profile.country", "United States",
	)
}

func followMessageJSON(t *testing.T, id int) string {
	return jsonOf(t,
		"id", id,
		"datetime_created", "2023-01-01T00:00:00.000Z",
		"actor_username", fmt.Sprintf("actor%d", id),
		"actor_id", id+1,
		"type", "followuser",
		"followed_user_id", 42,
		"followed_username", "griffpatch",
	)
}

// fakeRequester serves in-memory documents. List slices the listing at path
// the way the remote API does: limit capped at pageLimit, offset from the
// window start.
type fakeRequester struct {
	pageLimit int
	docs      map[string]string
	lists     map[string][]string
	err       error
	listCalls []s2pager.Cursor
}

func (r *fakeRequester) Get(_ context.Context, path string) (parser.Parser, error) {
	if r.err != nil {
		return parser.Parser{}, r.err
	}

	data, ok := r.docs[path]
	if !ok {
		return parser.Parser{}, &apierr.StatusError{Method: http.MethodGet, URL: path, Code: http.StatusNotFound}
	}

	return parser.ParseString(data)
}

func (r *fakeRequester) List(_ context.Context, path string, window s2pager.Cursor) ([]parser.Parser, error) {
	r.listCalls = append(r.listCalls, window)
	if r.err != nil {
		return nil, r.err
	}

	items, ok := r.lists[path]
	if !ok {
		return nil, &apierr.StatusError{Method: http.MethodGet, URL: path, Code: http.StatusNotFound}
	}

	start := min(window.Start(), len(items))
	end := len(items)
	if limit := s2pager.PageLimit(window, r.pageLimit); limit != s2pager.NoPageLimit {
		end = min(start+limit, end)
	}

	nodes := make([]parser.Parser, 0, end-start)
	for _, raw := range items[start:end] {
		node, err := parser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

var _ Requester = (*fakeRequester)(nil)
