package scratch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/s2pager/parser"
)

func Test_User_Decode(t *testing.T) {
	p, err := parser.ParseString(userJSON(t, 1882674, "griffpatch"))
	require.NoError(t, err)

	user, err := parser.Decode[User](p)
	require.NoError(t, err)
	require.Equal(t, uint64(1882674), user.ID)
	require.Equal(t, "griffpatch", user.Name)
	require.False(t, user.ScratchTeam)
	require.Equal(t, "2012-10-24T17:48:52.000Z", user.Joined)
	require.Equal(t, uint64(1882674+1000), user.Profile.ID)
	require.Equal(t, "https://cdn2.scratch.mit.edu/get_image/user/90x90.png", user.Profile.Images.X90)
	require.Equal(t, "https://cdn2.scratch.mit.edu/get_image/user/32x32.png", user.Profile.Images.X32)
	require.Equal(t, "United States", user.Profile.Country)
	require.Equal(t, UserRef{ID: 1882674, Name: "griffpatch"}, user.Ref())
}

func Test_User_MissingImage(t *testing.T) {
	p := nodeOf(t,
		"id", 1, "username", "a", "scratchteam", true, "history.joined", "x",
		"profile.id", 2, "profile.images.90x90", 5,
	)

	_, err := parser.Decode[User](p)

	var expectedErr *parser.ExpectedError
	require.ErrorAs(t, err, &expectedErr)
	require.Equal(t, "profile.images.90x90", expectedErr.Path)
	require.Equal(t, parser.ExpectedString, expectedErr.Expected)
}

func projectPairs(id int) []any {
	return []any{
		"id", id,
		"title", "Paper Minecraft",
		"description", "desc",
		"instructions", "WASD",
		"visibility", "visible",
		"public", true,
		"comments_allowed", true,
		"is_published", true,
		"author.id", 1882674,
		"author.scratchteam", false,
		"author.history.joined", "2012-10-24T17:48:52.000Z",
		"author.profile.id", nil,
		"author.profile.images.90x90", "a",
		"author.profile.images.60x60", "b",
		"author.profile.images.55x55", "c",
		"author.profile.images.50x50", "d",
		"author.profile.images.32x32", "e",
		"image", "https://cdn2.scratch.mit.edu/get_image/project/480x360.png",
		"stats.views", 1000,
		"stats.loves", 100,
		"stats.favorites", 50,
		"stats.remixes", 10,
		"remix.parent", nil,
		"remix.root", nil,
		"history.created", "2020-01-01T00:00:00.000Z",
		"history.modified", "2020-01-02T00:00:00.000Z",
		"history.shared", "2020-01-03T00:00:00.000Z",
	}
}

func Test_Project_Decode(t *testing.T) {
	project, err := parser.Decode[Project](nodeOf(t, projectPairs(10128407)...))
	require.NoError(t, err)
	require.Equal(t, uint64(10128407), project.ID)
	require.Equal(t, ProjectRef{ID: 10128407, Title: "Paper Minecraft"}, project.Ref())
	require.Empty(t, project.Author.Name)
	require.Equal(t, "a", project.Author.Images.X90)
	require.Equal(t, ProjectStats{Views: 1000, Loves: 100, Favorites: 50, Remixes: 10}, project.Stats)
	require.Nil(t, project.Remix.Parent)
	require.Nil(t, project.Remix.Root)
	require.Nil(t, project.Token)

	remix := append(projectPairs(2), "remix.parent", 1, "remix.root", 1, "project_token", "tok", "author.username", "griffpatch")
	project, err = parser.Decode[Project](nodeOf(t, remix...))
	require.NoError(t, err)
	require.Equal(t, "griffpatch", project.Author.Name)
	require.NotNil(t, project.Remix.Parent)
	require.Equal(t, uint64(1), *project.Remix.Parent)
	require.NotNil(t, project.Token)
	require.Equal(t, "tok", *project.Token)
}
