// Package scratch maps the Scratch REST API onto typed values and streams.
//
// Entities hold plain identifiers and never a handle to the API. Every
// operation takes the Requester it talks through as an explicit parameter:
//
//	c, _ := client.New()
//	stream := scratch.MessagesStream(c, "griffpatch", s2pager.WithStart(0))
//	for page, err := range stream.All(ctx) {
//		...
//	}
package scratch

import (
	"context"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/client"
	"github.com/Alp4ka/s2pager/parser"
)

// Requester performs the round trips of the domain operations.
type Requester interface {
	// Get requests a single JSON document.
	Get(ctx context.Context, path string) (parser.Parser, error)
	// List requests one window of a JSON array listing.
	List(ctx context.Context, path string, window s2pager.Cursor) ([]parser.Parser, error)
}

var _ Requester = (*client.Client)(nil)

// UserRef identifies a user.
type UserRef struct {
	ID   uint64
	Name string
}

// ProjectRef identifies a project.
type ProjectRef struct {
	ID    uint64
	Title string
}

// StudioRef identifies a studio.
type StudioRef struct {
	ID    uint64
	Title string
}
