package scratch

import (
	"fmt"

	"github.com/Alp4ka/s2pager/apierr"
	"github.com/Alp4ka/s2pager/parser"
)

// CommentLocationError - a comment message carried an unknown location code.
type CommentLocationError struct {
	Value uint8
}

func (e *CommentLocationError) Error() string {
	return fmt.Sprintf("unknown comment location %d", e.Value)
}

// Kind - implements apierr.Kinded.
func (e *CommentLocationError) Kind() apierr.Kind { return apierr.KindDomain }

type MessageEventErrorVariant uint8

const (
	MessageEventErrExpected MessageEventErrorVariant = iota + 1
	MessageEventErrCommentLocation
	MessageEventErrInvalidType
)

// MessageEventParseError - the event part of a message could not be parsed.
type MessageEventParseError struct {
	Variant MessageEventErrorVariant
	Err     error
}

func (e *MessageEventParseError) Error() string {
	return fmt.Sprintf("message event: %v", e.Err)
}

func (e *MessageEventParseError) Unwrap() error { return e.Err }

// Kind - implements apierr.Kinded.
func (e *MessageEventParseError) Kind() apierr.Kind { return apierr.KindOf(e.Err) }

var messageEventRoutes = apierr.Table[MessageEventErrorVariant]{
	apierr.On[*parser.ExpectedError](MessageEventErrExpected),
	apierr.On[*CommentLocationError](MessageEventErrCommentLocation),
	apierr.On[*apierr.UnknownDiscriminantError](MessageEventErrInvalidType),
}

func forwardMessageEvent(err error) error {
	return messageEventRoutes.Forward(err, func(v MessageEventErrorVariant, err error) error {
		return &MessageEventParseError{Variant: v, Err: err}
	})
}

type MessageErrorVariant uint8

const (
	MessageErrExpected MessageErrorVariant = iota + 1
	MessageErrEvent
)

// MessageParseError - a message could not be parsed.
type MessageParseError struct {
	Variant MessageErrorVariant
	Err     error
}

func (e *MessageParseError) Error() string {
	return fmt.Sprintf("message: %v", e.Err)
}

func (e *MessageParseError) Unwrap() error { return e.Err }

// Kind - implements apierr.Kinded.
func (e *MessageParseError) Kind() apierr.Kind { return apierr.KindOf(e.Err) }

var messageRoutes = apierr.Table[MessageErrorVariant]{
	apierr.On[*parser.ExpectedError](MessageErrExpected),
	apierr.On[*MessageEventParseError](MessageErrEvent),
}

func forwardMessage(err error) error {
	return messageRoutes.Forward(err, func(v MessageErrorVariant, err error) error {
		return &MessageParseError{Variant: v, Err: err}
	})
}

type ActivityEventErrorVariant uint8

const (
	ActivityEventErrExpected ActivityEventErrorVariant = iota + 1
	ActivityEventErrInvalidType
)

// ActivityEventParseError - the event part of an activity entry could not be
// parsed.
type ActivityEventParseError struct {
	Variant ActivityEventErrorVariant
	Err     error
}

func (e *ActivityEventParseError) Error() string {
	return fmt.Sprintf("activity event: %v", e.Err)
}

func (e *ActivityEventParseError) Unwrap() error { return e.Err }

// Kind - implements apierr.Kinded.
func (e *ActivityEventParseError) Kind() apierr.Kind { return apierr.KindOf(e.Err) }

var activityEventRoutes = apierr.Table[ActivityEventErrorVariant]{
	apierr.On[*parser.ExpectedError](ActivityEventErrExpected),
	apierr.On[*apierr.UnknownDiscriminantError](ActivityEventErrInvalidType),
}

func forwardActivityEvent(err error) error {
	return activityEventRoutes.Forward(err, func(v ActivityEventErrorVariant, err error) error {
		return &ActivityEventParseError{Variant: v, Err: err}
	})
}

type ErrorVariant uint8

const (
	ErrorNetwork ErrorVariant = iota + 1
	ErrorStatus
	ErrorParsing
)

func (v ErrorVariant) String() string {
	switch v {
	case ErrorNetwork:
		return "network"
	case ErrorStatus:
		return "status"
	case ErrorParsing:
		return "parsing"
	default:
		return fmt.Sprintf("ErrorVariant(%d)", uint8(v))
	}
}

// Error is returned by every endpoint operation of the package.
type Error struct {
	Variant ErrorVariant
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scratch: %s error: %v", e.Variant, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Kind - implements apierr.Kinded.
func (e *Error) Kind() apierr.Kind { return apierr.KindOf(e.Err) }

var endpointRoutes = apierr.Table[ErrorVariant]{
	apierr.On[*apierr.TransportError](ErrorNetwork),
	apierr.On[*apierr.StatusError](ErrorStatus),
	apierr.On[*parser.SyntaxError](ErrorParsing),
	apierr.On[*parser.ExpectedError](ErrorParsing),
	apierr.On[*MessageParseError](ErrorParsing),
	apierr.On[*ActivityEventParseError](ErrorParsing),
}

func forwardEndpoint(err error) error {
	return endpointRoutes.Forward(err, func(v ErrorVariant, err error) error {
		return &Error{Variant: v, Err: err}
	})
}

var (
	_ apierr.Kinded = (*CommentLocationError)(nil)
	_ apierr.Kinded = (*MessageEventParseError)(nil)
	_ apierr.Kinded = (*MessageParseError)(nil)
	_ apierr.Kinded = (*ActivityEventParseError)(nil)
	_ apierr.Kinded = (*Error)(nil)
)
