package domain

import "context"

// CallInvitation is one outstanding call request from one user to another.
// swagger:model CallInvitation
type CallInvitation struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// NewCallInvitation returns a CallInvitation for the given id and user pair.
func NewCallInvitation(id, from, to string) *CallInvitation {
	return &CallInvitation{ID: id, From: from, To: to}
}

// CallRegistry stores outstanding call invitations.
//
// Implementations must serialize Start, ListFor and End so that each call
// observes a consistent view. Ids are not unique: invitations sharing an id
// coexist until End removes all of them.
type CallRegistry interface {
	// Start appends inv to the registry.
	Start(ctx context.Context, inv *CallInvitation) error
	// ListFor returns invitations addressed to user in insertion order.
	// The result is never nil.
	ListFor(ctx context.Context, user string) ([]*CallInvitation, error)
	// End removes every invitation with the given id. Unknown ids are not an error.
	End(ctx context.Context, id string) error
}

// CallService defines the call invitation operations exposed to clients.
type CallService interface {
	StartCall(ctx context.Context, id, from, to string) (*CallInvitation, error)
	IncomingCalls(ctx context.Context, user string) ([]*CallInvitation, error)
	EndCall(ctx context.Context, id string) error
}
