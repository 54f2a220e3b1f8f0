package usecase

import (
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/stretchr/testify/assert"
)

// fakeReactionRepo keeps at most one reaction per (user, post) pair in
// memory, mirroring the unique index the real table enforces.
type fakeReactionRepo struct {
	reactions map[[2]string]entity.ReactionKind
	toggleErr error
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[[2]string]entity.ReactionKind)}
}

func (f *fakeReactionRepo) Toggle(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error) {
	if f.toggleErr != nil {
		return "", f.toggleErr
	}

	key := [2]string{userID, postID}
	outcome := entity.NextReactionOutcome(f.reactions[key], kind)
	switch outcome {
	case entity.ReactionAdded, entity.ReactionChanged:
		f.reactions[key] = kind
	case entity.ReactionRemoved:
		delete(f.reactions, key)
	}
	return outcome, nil
}

func (f *fakeReactionRepo) Get(userID, postID string) (*entity.Reaction, error) {
	kind, ok := f.reactions[[2]string{userID, postID}]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &entity.Reaction{UserID: userID, PostID: postID, Kind: kind}, nil
}

func (f *fakeReactionRepo) CountByKind(postID string, kind entity.ReactionKind) (int64, error) {
	var count int64
	for key, k := range f.reactions {
		if key[1] == postID && k == kind {
			count++
		}
	}
	return count, nil
}

// fakePostRepo resolves hashtags by name the way the real repository does:
// an existing row is reused, duplicates in the input collapse to one
// association.
type fakePostRepo struct {
	posts    map[string]*entity.Post
	hashtags map[string]entity.Hashtag
}

func newFakePostRepo(posts ...*entity.Post) *fakePostRepo {
	f := &fakePostRepo{
		posts:    make(map[string]*entity.Post),
		hashtags: make(map[string]entity.Hashtag),
	}
	for _, p := range posts {
		f.posts[p.ID] = p
	}
	return f
}

func (f *fakePostRepo) resolveHashtags(names []string) []entity.Hashtag {
	seen := make(map[string]bool, len(names))
	resolved := make([]entity.Hashtag, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, ok := f.hashtags[name]
		if !ok {
			tag = entity.Hashtag{ID: "tag-" + strconv.Itoa(len(f.hashtags)+1), Name: name}
			f.hashtags[name] = tag
		}
		resolved = append(resolved, tag)
	}
	return resolved
}

func (f *fakePostRepo) Create(post *entity.Post, hashtagNames []string) error {
	post.Hashtags = f.resolveHashtags(hashtagNames)
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(id string) (*entity.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return post, nil
}

func (f *fakePostRepo) Exists(id string) (bool, error) {
	_, ok := f.posts[id]
	return ok, nil
}

func (f *fakePostRepo) OwnerID(id string) (string, error) {
	post, ok := f.posts[id]
	if !ok {
		return "", errors.New("record not found")
	}
	return post.UserID, nil
}

func (f *fakePostRepo) Update(post *entity.Post, hashtagNames []string) error {
	if hashtagNames != nil {
		post.Hashtags = f.resolveHashtags(hashtagNames)
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) Feed(authorIDs []string, filter entity.FeedFilter) ([]*entity.Post, error) {
	var posts []*entity.Post
	for _, p := range f.posts {
		for _, id := range authorIDs {
			if p.UserID == id {
				posts = append(posts, p)
				break
			}
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (f *fakePostRepo) LikedBy(userID string) ([]*entity.Post, error) {
	return nil, nil
}

func TestReact_AddThenRemove(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	outcome, err := uc.React("user-1", "post-1", entity.ReactionLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionAdded, outcome)

	outcome, err = uc.React("user-1", "post-1", entity.ReactionLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionRemoved, outcome)

	_, err = reactionRepo.Get("user-1", "post-1")
	assert.Error(t, err)
}

func TestReact_AddThenChange(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	outcome, err := uc.React("user-1", "post-1", entity.ReactionLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionAdded, outcome)

	outcome, err = uc.React("user-1", "post-1", entity.ReactionDislike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionChanged, outcome)

	reaction, err := reactionRepo.Get("user-1", "post-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionDislike, reaction.Kind)
}

func TestReact_AtMostOneReactionPerPair(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	sequence := []entity.ReactionKind{
		entity.ReactionLike,
		entity.ReactionDislike,
		entity.ReactionDislike,
		entity.ReactionLike,
		entity.ReactionDislike,
	}
	for _, kind := range sequence {
		_, err := uc.React("user-1", "post-1", kind)
		assert.NoError(t, err)
	}

	assert.LessOrEqual(t, len(reactionRepo.reactions), 1)

	likes, _ := reactionRepo.CountByKind("post-1", entity.ReactionLike)
	dislikes, _ := reactionRepo.CountByKind("post-1", entity.ReactionDislike)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestReact_InvalidKind(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	_, err := uc.React("user-1", "post-1", entity.ReactionKind("LOVE"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, reactionRepo.reactions)
}

func TestReact_PostNotFound(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo()
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	_, err := uc.React("user-1", "missing-post", entity.ReactionLike)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReact_ToggleFailure(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	reactionRepo.toggleErr = errors.New("connection reset")
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	_, err := uc.React("user-1", "post-1", entity.ReactionLike)
	assert.Error(t, err)
}

func TestCountReactions_FallsBackToRepo(t *testing.T) {
	reactionRepo := newFakeReactionRepo()
	postRepo := newFakePostRepo(&entity.Post{ID: "post-1", UserID: "owner-1"})
	uc := NewReactionUseCase(reactionRepo, postRepo, nil, nil, logger.New())

	_, err := uc.React("user-1", "post-1", entity.ReactionLike)
	assert.NoError(t, err)
	_, err = uc.React("user-2", "post-1", entity.ReactionLike)
	assert.NoError(t, err)
	_, err = uc.React("user-3", "post-1", entity.ReactionDislike)
	assert.NoError(t, err)

	likes, err := uc.CountReactions("post-1", entity.ReactionLike)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), likes)

	dislikes, err := uc.CountReactions("post-1", entity.ReactionDislike)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), dislikes)
}
