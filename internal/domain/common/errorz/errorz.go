package errorz

import "errors"

var (
	// ErrNotFound covers both missing resources and resources the caller
	// is not allowed to see. The HTTP layer reports them identically so
	// private and disabled resources are not discoverable.
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrValidation = errors.New("validation failed")
	ErrEmailTaken = errors.New("email is already taken")

	ErrAlreadyMember     = errors.New("user already has a membership in this club")
	ErrOwnerMembership   = errors.New("club owner cannot be a member of their own club")
	ErrNotAMember        = errors.New("user is not a member of this club")
	ErrMembersOnly       = errors.New("only club members can register for events")
	ErrOwnerRegistration = errors.New("event organizer is automatically a participant")

	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrEventFull         = errors.New("event is full")
)
