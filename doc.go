// Package s2pager turns offset/limit list endpoints of a JSON HTTP API into
// resumable, lazily advancing streams of typed values.
//
// Overview
//
// The package is the core every resource of the SDK is built on:
//   - Cursor: an offset plus an optional bound. Translated into the limit and
//     offset query parameters, capped at a configurable page ceiling.
//   - Fetcher: a page-fetch strategy for one resource kind. It performs one
//     round trip per call and is the only per-endpoint piece.
//   - Stream: drives a Fetcher with a Cursor, advances the cursor after every
//     page and stops on the first empty page.
//
// Key concepts
//   - parser: wraps a JSON document and converts it into typed values with
//     precise "found X, expected Y at path" diagnostics.
//   - apierr: the error taxonomy (transport, HTTP status, shape mismatch,
//     domain) and the forwarding tables that widen leaf errors into the error
//     types of each layer.
//   - scratch: the domain values and fetchers of the remote API.
//   - archive: persists listings with GORM and replays them through a Stream.
package s2pager
