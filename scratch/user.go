package scratch

import "github.com/Alp4ka/s2pager/parser"

// ProfileImages are the avatar URLs of a user by size.
type ProfileImages struct {
	X90 string
	X60 string
	X55 string
	X50 string
	X32 string
}

func readProfileImages(f *fields, path ...string) ProfileImages {
	at := func(size string) []string {
		return append(append([]string{}, path...), size)
	}

	return ProfileImages{
		X90: f.str(at("90x90")...),
		X60: f.str(at("60x60")...),
		X55: f.str(at("55x55")...),
		X50: f.str(at("50x50")...),
		X32: f.str(at("32x32")...),
	}
}

// UserProfile is the public profile of a user.
type UserProfile struct {
	ID      uint64
	Images  ProfileImages
	Status  string
	Bio     string
	Country string
}

// User is a Scratch account.
type User struct {
	ID          uint64
	Name        string
	ScratchTeam bool
	Joined      string
	Profile     UserProfile
}

// Ref returns the identifier of the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

// UnmarshalParser - implements parser.Unmarshaler.
func (u *User) UnmarshalParser(p parser.Parser) error {
	f := fieldsOf(p)
	u.ID = f.u64("id")
	u.Name = f.str("username")
	u.ScratchTeam = f.bool("scratchteam")
	u.Joined = f.str("history", "joined")
	u.Profile = UserProfile{
		ID:      f.u64("profile", "id"),
		Images:  readProfileImages(f, "profile", "images"),
		Status:  f.str("profile", "status"),
		Bio:     f.str("profile", "bio"),
		Country: f.str("profile", "country"),
	}

	return f.err
}

var _ parser.Unmarshaler = (*User)(nil)
