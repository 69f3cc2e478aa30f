package s2pager

import (
	"context"
	"fmt"
	"iter"

	"github.com/rs/zerolog"
)

// Page is the result of one successful fetch.
type Page[T any] struct {
	// Items - elements in server order.
	Items []T
	// Window - the part of the listing the items were taken from.
	Window Cursor
}

// Len returns the number of elements in the page.
func (p Page[T]) Len() int {
	return len(p.Items)
}

// StreamOption configures a Stream.
type StreamOption func(*streamOptions)

type streamOptions struct {
	exactPageLimit int
	exactPages     bool
}

// WithExactPages declares that the fetcher serves exactly
// PageLimit(window, pageLimit) elements while the listing lasts, so a shorter
// page ends the stream without another request. Only use it when the backend
// is known to honour the limit, as a database LIMIT does. Remote servers may
// cap pages below the requested size.
func WithExactPages(pageLimit int) StreamOption {
	return func(o *streamOptions) {
		o.exactPageLimit = pageLimit
		o.exactPages = true
	}
}

// Stream turns a Fetcher into a lazily advancing sequence of pages.
//
// A Stream is either active (its cursor can progress) or exhausted. It issues
// at most one request at a time, never reads ahead and is not safe for
// concurrent use.
type Stream[T any] struct {
	fetcher Fetcher[T]
	cursor  Cursor
	opts    streamOptions
}

// NewStream returns a stream over f starting at cursor.
func NewStream[T any](f Fetcher[T], cursor Cursor, opts ...StreamOption) *Stream[T] {
	var o streamOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Stream[T]{
		fetcher: f,
		cursor:  cursor,
		opts:    o,
	}
}

// Cursor returns a copy of the current cursor.
func (s *Stream[T]) Cursor() Cursor {
	return s.cursor
}

// CanProgress returns true if another fetch may return data.
func (s *Stream[T]) CanProgress() bool {
	return s.cursor.CanProgress()
}

// Exhausted is the negation of CanProgress.
func (s *Stream[T]) Exhausted() bool {
	return !s.CanProgress()
}

// Progress fetches the current window and advances the cursor by the number of
// returned elements. On error the cursor is left untouched so the same window
// can be retried.
//
// An empty page exhausts the stream even if the window is still open: the
// server may report more entries than it actually serves. With WithExactPages
// a short page exhausts it as well.
func (s *Stream[T]) Progress(ctx context.Context) (Page[T], error) {
	window := s.cursor
	logger := zerolog.Ctx(ctx)

	items, err := s.fetcher.Fetch(ctx, window)
	if err != nil {
		logger.Debug().Err(err).Int("offset", window.Start()).Msg("page fetch failed")
		return Page[T]{}, err
	}

	consumed := s.cursor.Advance(len(items))
	if len(items) == 0 || s.isShortPage(window, len(items)) {
		s.cursor.Kill()
	}

	logger.Trace().
		Int("offset", window.Start()).
		Int("returned", len(items)).
		Bool("exhausted", s.Exhausted()).
		Msg("page fetched")

	return Page[T]{Items: items, Window: consumed}, nil
}

func (s *Stream[T]) isShortPage(window Cursor, returned int) bool {
	if !s.opts.exactPages {
		return false
	}

	requested := PageLimit(window, s.opts.exactPageLimit)
	return requested != NoPageLimit && returned < requested
}

// Next returns the next non-empty page. The boolean is false once the stream
// is exhausted; the empty page that marks the end of a listing is not
// returned. No request is made on an exhausted stream.
func (s *Stream[T]) Next(ctx context.Context) (Page[T], bool, error) {
	if !s.CanProgress() {
		return Page[T]{}, false, nil
	}

	page, err := s.Progress(ctx)
	if err != nil {
		return Page[T]{}, true, err
	}
	if page.Len() == 0 {
		return Page[T]{}, false, nil
	}

	return page, true, nil
}

// Collect drains the stream into one slice. The first error aborts the
// collection and nothing collected so far is returned.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var result []T
	for {
		page, ok, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}

		result = append(result, page.Items...)
	}
}

// ForEach calls fn with every page until the stream is exhausted. Fetch and
// callback errors stop the iteration and are returned; callback errors are
// wrapped.
func (s *Stream[T]) ForEach(ctx context.Context, fn func(Page[T]) error) error {
	for {
		page, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err = fn(page); err != nil {
			return fmt.Errorf("page callback at offset %d: %w", page.Window.Start(), err)
		}
	}
}

// All returns an iterator over the remaining pages. Iteration stops after the
// first error, which is yielded with an empty page.
//
// Usage:
//
//	for page, err := range stream.All(ctx) {
//		if err != nil {
//			return err
//		}
//		...
//	}
func (s *Stream[T]) All(ctx context.Context) iter.Seq2[Page[T], error] {
	return func(yield func(Page[T], error) bool) {
		for {
			page, ok, err := s.Next(ctx)
			if err != nil {
				yield(Page[T]{}, err)
				return
			}
			if !ok || !yield(page, nil) {
				return
			}
		}
	}
}
