package s2pager

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// PageQuery is the wire form of a Cursor window.
type PageQuery struct {
	// Limit - number of elements requested. Omitted when the page has no ceiling.
	Limit int `url:"limit,omitempty"`
	// Offset - position of the first requested element.
	Offset int `url:"offset"`
}

// Values encodes the query as url.Values.
func (q PageQuery) Values() (url.Values, error) {
	if q.Limit < 0 {
		q.Limit = 0
	}

	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("cannot encode page query: %w", err)
	}

	return values, nil
}

// Encode merges the page query into an existing URL query.
func (q PageQuery) Encode(into url.Values) (url.Values, error) {
	values, err := q.Values()
	if err != nil {
		return nil, err
	}

	if into == nil {
		return values, nil
	}

	for k, v := range values {
		into[k] = v
	}

	return into, nil
}
