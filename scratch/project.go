package scratch

import (
	"github.com/samber/lo"

	"github.com/Alp4ka/s2pager/parser"
)

// ProjectAuthor is the owner of a project as embedded in project documents.
// Name is empty in per-user listings, which omit it.
type ProjectAuthor struct {
	ID          uint64
	Name        string
	ScratchTeam bool
	Joined      string
	Images      ProfileImages
}

// ProjectStats are the engagement counters of a project.
type ProjectStats struct {
	Views     uint64
	Loves     uint64
	Favorites uint64
	Remixes   uint64
}

// ProjectRemix links a remix to its origin. Both are nil for original work.
type ProjectRemix struct {
	Parent *uint64
	Root   *uint64
}

// ProjectHistory holds the timestamps of a project.
type ProjectHistory struct {
	Created  string
	Modified string
	Shared   string
}

// Project is a shared Scratch project.
type Project struct {
	ID              uint64
	Title           string
	Description     string
	Instructions    string
	Visibility      string
	Public          bool
	CommentsAllowed bool
	IsPublished     bool
	Author          ProjectAuthor
	Image           string
	Stats           ProjectStats
	Remix           ProjectRemix
	History         ProjectHistory
	// Token - the asset access token, only present on single project lookups.
	Token *string
}

// Ref returns the identifier of the project.
func (p Project) Ref() ProjectRef {
	return ProjectRef{ID: p.ID, Title: p.Title}
}

// UnmarshalParser - implements parser.Unmarshaler.
func (p *Project) UnmarshalParser(node parser.Parser) error {
	f := fieldsOf(node)
	p.ID = f.u64("id")
	p.Title = f.str("title")
	p.Description = f.str("description")
	p.Instructions = f.str("instructions")
	p.Visibility = f.str("visibility")
	p.Public = f.bool("public")
	p.CommentsAllowed = f.bool("comments_allowed")
	p.IsPublished = f.bool("is_published")
	p.Author = ProjectAuthor{
		ID:          f.u64("author", "id"),
		Name:        lo.FromPtr(f.optStr("author", "username")),
		ScratchTeam: f.bool("author", "scratchteam"),
		Joined:      f.str("author", "history", "joined"),
		Images:      readProfileImages(f, "author", "profile", "images"),
	}
	p.Image = f.str("image")
	p.Stats = ProjectStats{
		Views:     f.u64("stats", "views"),
		Loves:     f.u64("stats", "loves"),
		Favorites: f.u64("stats", "favorites"),
		Remixes:   f.u64("stats", "remixes"),
	}
	p.Remix = ProjectRemix{
		Parent: f.optU64("remix", "parent"),
		Root:   f.optU64("remix", "root"),
	}
	p.History = ProjectHistory{
		Created:  f.str("history", "created"),
		Modified: f.str("history", "modified"),
		Shared:   f.str("history", "shared"),
	}
	p.Token = f.optStr("project_token")

	return f.err
}

var _ parser.Unmarshaler = (*Project)(nil)
