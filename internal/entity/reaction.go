package entity

import "time"

type ReactionKind string

const (
	ReactionLike    ReactionKind = "LIKE"
	ReactionDislike ReactionKind = "DISLIKE"
)

func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// ReactionOutcome is what a toggle did to the (user, post) pair.
type ReactionOutcome string

const (
	ReactionAdded   ReactionOutcome = "added"
	ReactionChanged ReactionOutcome = "changed"
	ReactionRemoved ReactionOutcome = "removed"
)

// NextReactionOutcome decides the toggle transition for a requested kind
// given the current one; current is empty when no reaction exists for the
// pair. Requesting the current kind removes it, requesting the other kind
// flips it, requesting from absent creates it.
func NextReactionOutcome(current, requested ReactionKind) ReactionOutcome {
	switch current {
	case "":
		return ReactionAdded
	case requested:
		return ReactionRemoved
	default:
		return ReactionChanged
	}
}

// Reaction holds at most one row per (user, post) pair; the kind flips or
// clears through the toggle, never duplicates.
type Reaction struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	PostID    string       `json:"post_id"`
	Kind      ReactionKind `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
