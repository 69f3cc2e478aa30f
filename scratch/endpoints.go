package scratch

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/parser"
)

func userPath(name string, rest string) string {
	return "users/" + url.PathEscape(name) + "/" + rest
}

func studioPath(id uint64, rest string) string {
	return "studios/" + strconv.FormatUint(id, 10) + "/" + rest
}

// Listing paths, relative to the API root.
func MessagesPath(name string) string          { return userPath(name, "messages/") }
func ActivityPath(name string) string          { return userPath(name, "following/users/activity/") }
func FollowersPath(name string) string         { return userPath(name, "followers/") }
func FollowingPath(name string) string         { return userPath(name, "following/") }
func ProjectsPath(name string) string          { return userPath(name, "projects/") }
func FavoritesPath(name string) string         { return userPath(name, "favorites/") }
func LovedByFollowingPath(name string) string  { return userPath(name, "following/users/loves/") }
func SharedByFollowingPath(name string) string { return userPath(name, "following/users/projects/") }
func StudioCuratorsPath(id uint64) string      { return studioPath(id, "curators/") }
func StudioManagersPath(id uint64) string      { return studioPath(id, "managers/") }

// RawFetcher returns a fetcher of the untyped elements of the listing at path.
func RawFetcher(r Requester, path string) s2pager.Fetcher[parser.Parser] {
	return s2pager.FetcherFunc[parser.Parser](func(ctx context.Context, window s2pager.Cursor) ([]parser.Parser, error) {
		nodes, err := r.List(ctx, path, window)
		if err != nil {
			return nil, forwardEndpoint(err)
		}

		return nodes, nil
	})
}

// ListFetcher returns a fetcher decoding every element of the listing at path
// into T.
func ListFetcher[T any, PT interface {
	*T
	parser.Unmarshaler
}](r Requester, path string) s2pager.Fetcher[T] {
	return s2pager.MapFetcher(RawFetcher(r, path), func(nodes []parser.Parser) ([]T, error) {
		items, err := parser.DecodeAll[T, PT](nodes)
		if err != nil {
			return nil, forwardEndpoint(err)
		}

		return items, nil
	})
}

// RawStream streams the untyped elements of the listing at path.
func RawStream(r Requester, path string, c s2pager.Cursor) *s2pager.Stream[parser.Parser] {
	return s2pager.NewStream(RawFetcher(r, path), c)
}

// MessagesStream streams the message inbox of a user. Requires an
// authenticated requester.
func MessagesStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Message] {
	return s2pager.NewStream(ListFetcher[Message](r, MessagesPath(name)), c)
}

// ActivityStream streams what the users followed by name have been doing.
func ActivityStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Activity] {
	return s2pager.NewStream(ListFetcher[Activity](r, ActivityPath(name)), c)
}

// FollowersStream streams the followers of a user.
func FollowersStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[User] {
	return s2pager.NewStream(ListFetcher[User](r, FollowersPath(name)), c)
}

// FollowingStream streams the users a user follows.
func FollowingStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[User] {
	return s2pager.NewStream(ListFetcher[User](r, FollowingPath(name)), c)
}

// ProjectsStream streams the shared projects of a user.
func ProjectsStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Project] {
	return s2pager.NewStream(ListFetcher[Project](r, ProjectsPath(name)), c)
}

// FavoritesStream streams the projects a user marked as favorite.
func FavoritesStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Project] {
	return s2pager.NewStream(ListFetcher[Project](r, FavoritesPath(name)), c)
}

// LovedByFollowingStream streams projects loved by the users name follows.
func LovedByFollowingStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Project] {
	return s2pager.NewStream(ListFetcher[Project](r, LovedByFollowingPath(name)), c)
}

// SharedByFollowingStream streams projects shared by the users name follows.
func SharedByFollowingStream(r Requester, name string, c s2pager.Cursor) *s2pager.Stream[Project] {
	return s2pager.NewStream(ListFetcher[Project](r, SharedByFollowingPath(name)), c)
}

// StudioCuratorsStream streams the curators of a studio.
func StudioCuratorsStream(r Requester, id uint64, c s2pager.Cursor) *s2pager.Stream[User] {
	return s2pager.NewStream(ListFetcher[User](r, StudioCuratorsPath(id)), c)
}

// StudioManagersStream streams the managers of a studio.
func StudioManagersStream(r Requester, id uint64, c s2pager.Cursor) *s2pager.Stream[User] {
	return s2pager.NewStream(ListFetcher[User](r, StudioManagersPath(id)), c)
}

func get[T any, PT interface {
	*T
	parser.Unmarshaler
}](ctx context.Context, r Requester, path string) (T, error) {
	doc, err := r.Get(ctx, path)
	if err != nil {
		var zero T
		return zero, forwardEndpoint(err)
	}

	v, err := parser.Decode[T, PT](doc)
	if err != nil {
		var zero T
		return zero, forwardEndpoint(err)
	}

	return v, nil
}

// GetUser looks a user up by name.
func GetUser(ctx context.Context, r Requester, name string) (User, error) {
	return get[User](ctx, r, "users/"+url.PathEscape(name)+"/")
}

// GetProject looks a project up by id.
func GetProject(ctx context.Context, r Requester, id uint64) (Project, error) {
	return get[Project](ctx, r, "projects/"+strconv.FormatUint(id, 10)+"/")
}

// MessageCount returns the number of unread messages of a user.
func MessageCount(ctx context.Context, r Requester, name string) (uint64, error) {
	doc, err := r.Get(ctx, userPath(name, "messages/count/"))
	if err != nil {
		return 0, forwardEndpoint(err)
	}

	count, err := doc.I("count").U64()
	if err != nil {
		return 0, forwardEndpoint(err)
	}

	return count, nil
}
