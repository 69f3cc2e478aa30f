package s2pager

import "context"

// Fetcher is a page-fetch strategy for one kind of resource. Fetch performs
// exactly one round trip for the given window and returns the parsed page.
//
// The returned page may be shorter than the window, servers cap page sizes on
// their own. An empty page means the listing ended. Errors are returned as
// they are, the Stream never interprets them.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, window Cursor) ([]T, error)
}

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context, window Cursor) ([]T, error)

// Fetch - implements Fetcher.
func (f FetcherFunc[T]) Fetch(ctx context.Context, window Cursor) ([]T, error) {
	return f(ctx, window)
}

// MapFetcher converts every page returned by f with conv. The conversion sees
// the whole page so it can fail on the first bad element.
func MapFetcher[A, B any](f Fetcher[A], conv func([]A) ([]B, error)) Fetcher[B] {
	return FetcherFunc[B](func(ctx context.Context, window Cursor) ([]B, error) {
		page, err := f.Fetch(ctx, window)
		if err != nil {
			return nil, err
		}

		return conv(page)
	})
}

var _ Fetcher[any] = FetcherFunc[any](nil)
