package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type tLayerVariant uint8

const (
	tLayerNetwork tLayerVariant = iota + 1
	tLayerStatus
	tLayerDomain
)

type tLayerError struct {
	variant tLayerVariant
	err     error
}

func (e *tLayerError) Error() string { return fmt.Sprintf("layer %d: %v", e.variant, e.err) }
func (e *tLayerError) Unwrap() error { return e.err }
func (e *tLayerError) Kind() Kind    { return KindOf(e.err) }

var tLayerRoutes = Table[tLayerVariant]{
	On[*TransportError](tLayerNetwork),
	On[*StatusError](tLayerStatus),
	On[*UnknownDiscriminantError](tLayerDomain),
}

func forwardLayer(err error) error {
	return tLayerRoutes.Forward(err, func(v tLayerVariant, err error) error {
		return &tLayerError{variant: v, err: err}
	})
}

func Test_KindOf(t *testing.T) {
	transport := &TransportError{Method: http.MethodGet, URL: "https://example.com", Err: errors.New("dial tcp: refused")}
	status := &StatusError{Method: http.MethodGet, URL: "https://example.com", Code: http.StatusNotFound}
	domain := &UnknownDiscriminantError{Field: "type", Value: "unknown_event"}

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain error", errors.New("plain"), KindUnknown},
		{"transport", transport, KindTransport},
		{"status", status, KindStatus},
		{"domain", domain, KindDomain},
		{"wrapped by fmt", fmt.Errorf("fetch: %w", status), KindStatus},
		{"forwarded", forwardLayer(transport), KindTransport},
		{"forwarded twice", fmt.Errorf("outer: %w", forwardLayer(domain)), KindDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func Test_Table_Forward(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, forwardLayer(nil))
	})

	t.Run("known inner types are wrapped", func(t *testing.T) {
		status := &StatusError{Code: http.StatusForbidden}

		err := forwardLayer(status)

		var layerErr *tLayerError
		require.ErrorAs(t, err, &layerErr)
		require.Equal(t, tLayerStatus, layerErr.variant)
		require.True(t, HasStatus(err, http.StatusForbidden))
		require.False(t, IsNotFound(err))
	})

	t.Run("unknown inner types pass through", func(t *testing.T) {
		errPlain := errors.New("plain")
		require.Same(t, errPlain, forwardLayer(errPlain))
	})

	t.Run("matching ignores the wrap chain", func(t *testing.T) {
		wrapped := fmt.Errorf("wrapped: %w", &StatusError{Code: http.StatusTeapot})

		_, ok := tLayerRoutes.Variant(wrapped)
		require.False(t, ok)
	})
}

func Test_ErrorMessages(t *testing.T) {
	require.Equal(t,
		"GET https://example.com/users: unexpected status 404 Not Found",
		(&StatusError{Method: http.MethodGet, URL: "https://example.com/users", Code: http.StatusNotFound}).Error(),
	)
	require.Equal(t,
		"unrecognized type 'unknown_event'",
		(&UnknownDiscriminantError{Field: "type", Value: "unknown_event"}).Error(),
	)
	require.Equal(t, "domain", KindDomain.String())
}
