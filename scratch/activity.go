package scratch

import (
	"github.com/Alp4ka/s2pager/apierr"
	"github.com/Alp4ka/s2pager/parser"
)

// Activity is an entry of the activity feed of the users someone follows.
type Activity struct {
	ID        uint64
	CreatedAt string
	Actor     UserRef
	EventType string
	Event     ActivityEvent
}

// UnmarshalParser - implements parser.Unmarshaler.
func (a *Activity) UnmarshalParser(p parser.Parser) error {
	f := fieldsOf(p)
	a.ID = f.u64("id")
	a.CreatedAt = f.str("datetime_created")
	a.Actor = UserRef{ID: f.u64("actor_id"), Name: f.str("actor_username")}
	a.EventType = f.str("type")
	if f.err != nil {
		return f.err
	}

	event, err := ParseActivityEvent(p)
	if err != nil {
		return err
	}
	a.Event = event

	return nil
}

// ActivityEvent is the type specific part of an Activity. It is one of
// ActivityFollowUser, ActivityFollowStudio, ActivityLoveProject,
// ActivityFavoriteProject, ActivityBecomeCurator, ActivityShareProject,
// ActivityRemixProject and ActivityBecomeOwnerStudio.
type ActivityEvent interface {
	// Type returns the discriminant the event was parsed from.
	Type() string
	isActivityEvent()
}

type (
	ActivityFollowUser struct {
		To UserRef
	}
	ActivityFollowStudio struct {
		Studio StudioRef
	}
	ActivityLoveProject struct {
		Project ProjectRef
	}
	ActivityFavoriteProject struct {
		Project ProjectRef
	}
	ActivityBecomeCurator struct {
		Studio StudioRef
		// ToName - the user who accepted the curator invite.
		ToName string
	}
	ActivityShareProject struct {
		Project ProjectRef
	}
	ActivityRemixProject struct {
		Project ProjectRef
		Parent  ProjectRef
	}
	ActivityBecomeOwnerStudio struct {
		Studio StudioRef
		To     UserRef
	}
)

func (ActivityFollowUser) Type() string        { return "followuser" }
func (ActivityFollowStudio) Type() string      { return "followstudio" }
func (ActivityLoveProject) Type() string       { return "loveproject" }
func (ActivityFavoriteProject) Type() string   { return "favoriteproject" }
func (ActivityBecomeCurator) Type() string     { return "becomecurator" }
func (ActivityShareProject) Type() string      { return "shareproject" }
func (ActivityRemixProject) Type() string      { return "remixproject" }
func (ActivityBecomeOwnerStudio) Type() string { return "becomeownerstudio" }

func (ActivityFollowUser) isActivityEvent()        {}
func (ActivityFollowStudio) isActivityEvent()      {}
func (ActivityLoveProject) isActivityEvent()       {}
func (ActivityFavoriteProject) isActivityEvent()   {}
func (ActivityBecomeCurator) isActivityEvent()     {}
func (ActivityShareProject) isActivityEvent()      {}
func (ActivityRemixProject) isActivityEvent()      {}
func (ActivityBecomeOwnerStudio) isActivityEvent() {}

var activityEventParsers = map[string]func(f *fields) ActivityEvent{
	"followuser": func(f *fields) ActivityEvent {
		return ActivityFollowUser{To: UserRef{ID: f.u64("followed_user_id"), Name: f.str("followed_username")}}
	},
	"followstudio": func(f *fields) ActivityEvent {
		return ActivityFollowStudio{Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("title")}}
	},
	"loveproject": func(f *fields) ActivityEvent {
		return ActivityLoveProject{Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("project_title")}}
	},
	"favoriteproject": func(f *fields) ActivityEvent {
		return ActivityFavoriteProject{Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("project_title")}}
	},
	"becomecurator": func(f *fields) ActivityEvent {
		return ActivityBecomeCurator{
			Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("title")},
			ToName: f.str("username"),
		}
	},
	"shareproject": func(f *fields) ActivityEvent {
		return ActivityShareProject{Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("project_title")}}
	},
	"remixproject": func(f *fields) ActivityEvent {
		return ActivityRemixProject{
			Project: ProjectRef{ID: f.u64("project_id"), Title: f.str("title")},
			Parent:  ProjectRef{ID: f.u64("parent_id"), Title: f.str("parent_title")},
		}
	},
	"becomeownerstudio": func(f *fields) ActivityEvent {
		return ActivityBecomeOwnerStudio{
			Studio: StudioRef{ID: f.u64("gallery_id"), Title: f.str("gallery_title")},
			To:     UserRef{ID: f.u64("recipient_id"), Name: f.str("recipient_username")},
		}
	},
}

// ParseActivityEvent dispatches on the "type" field of an activity entry.
// Errors are *ActivityEventParseError.
func ParseActivityEvent(p parser.Parser) (ActivityEvent, error) {
	event, err := parseActivityEvent(p)
	if err != nil {
		return nil, forwardActivityEvent(err)
	}

	return event, nil
}

func parseActivityEvent(p parser.Parser) (ActivityEvent, error) {
	eventType, err := p.I("type").Str()
	if err != nil {
		return nil, err
	}

	parse, ok := activityEventParsers[eventType]
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

var _ parser.Unmarshaler = (*Activity)(nil)
