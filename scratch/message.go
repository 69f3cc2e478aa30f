package scratch

import (
	"fmt"

	"github.com/Alp4ka/s2pager/apierr"
	"github.com/Alp4ka/s2pager/parser"
)

// CommentLocation is where a comment was posted.
type CommentLocation uint8

const (
	CommentOnProject CommentLocation = 0
	CommentOnProfile CommentLocation = 1
	CommentOnStudio  CommentLocation = 2
)

// ParseCommentLocation maps the wire code of a comment location.
func ParseCommentLocation(code uint8) (CommentLocation, error) {
	switch CommentLocation(code) {
	case CommentOnProject, CommentOnProfile, CommentOnStudio:
		return CommentLocation(code), nil
	default:
		return 0, &CommentLocationError{Value: code}
	}
}

func (l CommentLocation) String() string {
	switch l {
	case CommentOnProject:
		return "project"
	case CommentOnProfile:
		return "profile"
	case CommentOnStudio:
		return "studio"
	default:
		return fmt.Sprintf("CommentLocation(%d)", uint8(l))
	}
}

// Message is an entry of a user's message inbox.
type Message struct {
	ID        uint64
	CreatedAt string
	Actor     UserRef
	EventType string
	Event     MessageEvent
}

// UnmarshalParser - implements parser.Unmarshaler.
func (m *Message) UnmarshalParser(p parser.Parser) error {
	f := fieldsOf(p)
	m.ID = f.u64("id")
	m.CreatedAt = f.str("datetime_created")
	m.Actor = UserRef{ID: f.u64("actor_id"), Name: f.str("actor_username")}
	m.EventType = f.str("type")
	if f.err != nil {
		return forwardMessage(f.err)
	}

	event, err := ParseMessageEvent(p)
	if err != nil {
		return forwardMessage(err)
	}
	m.Event = event

	return nil
}

// MessageEvent is the type specific part of a Message. It is one of
// MessageFollowUser, MessageLoveProject, MessageFavoriteProject,
// MessageRemixProject, MessageAddComment, MessageCuratorInvite,
// MessageBecomeOwnerStudio, MessageStudioActivity, MessageForumPost and
// MessageUserJoin.
type MessageEvent interface {
	// Type returns the discriminant the event was parsed from.
	Type() string
	isMessageEvent()
}

type (
	MessageFollowUser struct {
		To UserRef
	}
	MessageLoveProject struct {
		Project ProjectRef
	}
	MessageFavoriteProject struct {
		Project ProjectRef
	}
	MessageRemixProject struct {
		Project ProjectRef
		Parent  ProjectRef
	}
	MessageAddComment struct {
		Location      CommentLocation
		LocationID    uint64
		LocationTitle string
		CommentID     uint64
		Fragment      string
		// ToName - the user the comment replies to, nil for top level comments.
		ToName *string
	}
	MessageCuratorInvite struct {
		Studio StudioRef
	}
	MessageBecomeOwnerStudio struct {
		Studio StudioRef
	}
	MessageStudioActivity struct {
		Studio StudioRef
	}
	MessageForumPost struct {
		TopicID    uint64
		TopicTitle string
	}
	MessageUserJoin struct{}
)

func (MessageFollowUser) Type() string        { return "followuser" }
func (MessageLoveProject) Type() string       { return "loveproject" }
func (MessageFavoriteProject) Type() string   { return "favoriteproject" }
func (MessageRemixProject) Type() string      { return "remixproject" }
func (MessageAddComment) Type() string        { return "addcomment" }
func (MessageCuratorInvite) Type() string     { return "curatorinvite" }
func (MessageBecomeOwnerStudio) Type() string { return "becomeownerstudio" }
func (MessageStudioActivity) Type() string    { return "studioactivity" }
func (MessageForumPost) Type() string         { return "forumpost" }
func (MessageUserJoin) Type() string          { return "userjoin" }

func (MessageFollowUser) isMessageEvent()        {}
func (MessageLoveProject) isMessageEvent()       {}
func (MessageFavoriteProject) isMessageEvent()   {}
func (MessageRemixProject) isMessageEvent()      {}
func (MessageAddComment) isMessageEvent()        {}
func (MessageCuratorInvite) isMessageEvent()     {}
func (MessageBecomeOwnerStudio) isMessageEvent() {}
func (MessageStudioActivity) isMessageEvent()    {}
func (MessageForumPost) isMessageEvent()         {}
func (MessageUserJoin) isMessageEvent()          {}

var messageEventParsers = map[string]func(f *fields) MessageEvent{
	"followuser": func(f *fields) MessageEvent {
		return MessageFollowUser{To: UserRef{ID: f.u64("followed_user_id"), Name: f.str("followed_username")}}
	},
	"loveproject": func(f *fields) MessageEvent {
		return MessageLoveProject{Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("title")}}
	},
	"favoriteproject": func(f *fields) MessageEvent {
		return MessageFavoriteProject{Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("project_title")}}
	},
	"remixproject": func(f *fields) MessageEvent {
		return MessageRemixProject{
			Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("title")},
			Parent:  ProjectRef{ID: f.u64("parent_id"), Title: f.str("parent_title")},
		}
	},
	"addcomment": func(f *fields) MessageEvent {
		return MessageAddComment{
			Location:      f.commentLocation("comment_type"),
			LocationID:    f.u64("comment_obj_id"),
			LocationTitle: f.str("comment_obj_title"),
			CommentID:     f.u64("comment_id"),
			Fragment:      f.str("comment_fragment"),
			ToName:        f.optStr("commentee_username"),
		}
	},
	"curatorinvite": func(f *fields) MessageEvent {
		return MessageCuratorInvite{Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("title")}}
	},
	"becomeownerstudio": func(f *fields) MessageEvent {
		return MessageBecomeOwnerStudio{Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("title")}}
	},
	"studioactivity": func(f *fields) MessageEvent {
		return MessageStudioActivity{Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("title")}}
	},
	"forumpost": func(f *fields) MessageEvent {
		return MessageForumPost{TopicID: f.u64("topic_id"), TopicTitle: f.str("topic_title")}
	},
	"userjoin": func(*fields) MessageEvent {
		return MessageUserJoin{}
	},
}

// ParseMessageEvent dispatches on the "type" field of a message. Errors are
// *MessageEventParseError.
func ParseMessageEvent(p parser.Parser) (MessageEvent, error) {
	event, err := parseMessageEvent(p)
	if err != nil {
		return nil, forwardMessageEvent(err)
	}

	return event, nil
}

func parseMessageEvent(p parser.Parser) (MessageEvent, error) {
	eventType, err := p.I("type").Str()
	if err != nil {
		return nil, err
	}

	parse, ok := messageEventParsers[eventType]
	if !ok {
		return nil, &apierr.UnknownDiscriminantError{Field: "type", Value: eventType}
	}

	f := fieldsOf(p)
	event := parse(f)
	if f.err != nil {
		return nil, f.err
	}

	return event, nil
}

var _ parser.Unmarshaler = (*Message)(nil)
