package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextReactionOutcome(t *testing.T) {
	tests := []struct {
		name      string
		current   ReactionKind
		requested ReactionKind
		expected  ReactionOutcome
	}{
		{"no reaction, like", "", ReactionLike, ReactionAdded},
		{"no reaction, dislike", "", ReactionDislike, ReactionAdded},
		{"like, like again", ReactionLike, ReactionLike, ReactionRemoved},
		{"dislike, dislike again", ReactionDislike, ReactionDislike, ReactionRemoved},
		{"like, then dislike", ReactionLike, ReactionDislike, ReactionChanged},
		{"dislike, then like", ReactionDislike, ReactionLike, ReactionChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextReactionOutcome(tt.current, tt.requested))
		})
	}
}

func TestReactionKind_Valid(t *testing.T) {
	assert.True(t, ReactionLike.Valid())
	assert.True(t, ReactionDislike.Valid())
	assert.False(t, ReactionKind("").Valid())
	assert.False(t, ReactionKind("like").Valid())
	assert.False(t, ReactionKind("LOVE").Valid())
}
