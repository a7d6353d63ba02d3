package publish

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostStore struct {
	posts     map[uuid.UUID]model.Post
	createErr error
	creates   int
	updates   int
}

func newStubPostStore() *stubPostStore {
	return &stubPostStore{posts: map[uuid.UUID]model.Post{}}
}

func (s *stubPostStore) Create(ctx context.Context, post *model.Post) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.creates++
	id := uuid.New()
	post.ID = id
	s.posts[id] = *post
	return id, nil
}

func (s *stubPostStore) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, fmt.Errorf("%w: post %s", interview.ErrNotFound, id)
	}
	return p, nil
}

func (s *stubPostStore) Update(ctx context.Context, post *model.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return fmt.Errorf("%w: post %s", interview.ErrNotFound, post.ID)
	}
	s.updates++
	s.posts[post.ID] = *post
	return nil
}

type stubProfileStore struct {
	profiles map[string]model.Profile
	err      error
}

func (s *stubProfileStore) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	if s.err != nil {
		return model.Profile{}, s.err
	}
	p, ok := s.profiles[email]
	if !ok {
		return model.Profile{}, fmt.Errorf("%w: email %s", interview.ErrNotFound, email)
	}
	return p, nil
}

func profile(role model.Role, email, nickname string) model.Profile {
	return model.Profile{ID: uuid.New(), Email: email, Nickname: nickname, Role: role}
}

func TestSubmitOwnRecord(t *testing.T) {
	posts := newStubPostStore()
	pub := NewPublisher(posts, &stubProfileStore{})
	acting := profile(model.RoleSilver, "user@example.com", "모험가A")

	id, err := pub.Submit(context.Background(), SubmitInput{
		Acting:   acting,
		Category: "Ai부업경험담",
		Title:    "GPT",
		Content:  "리포트 본문",
		Result:   "기록 완료",
	})
	require.NoError(t, err)
	require.Equal(t, 1, posts.creates)

	stored := posts.posts[id]
	assert.Equal(t, acting.ID, stored.UserID)
	assert.Equal(t, "모험가A", stored.Author)
	assert.Equal(t, 0, stored.Likes)
}

func TestSubmitProxySetsTargetIdentity(t *testing.T) {
	posts := newStubPostStore()
	admin := profile(model.RoleAdmin, "admin@example.com", "관리자")
	target := profile(model.RoleSilver, "target@example.com", "타깃")
	pub := NewPublisher(posts, &stubProfileStore{profiles: map[string]model.Profile{
		target.Email: target,
	}})

	id, err := pub.Submit(context.Background(), SubmitInput{
		Acting:      admin,
		TargetEmail: target.Email,
		Category:    "Ai부업경험담",
		Title:       "제목",
		Content:     "본문",
	})
	require.NoError(t, err)

	stored := posts.posts[id]
	assert.Equal(t, target.ID, stored.UserID)
	assert.Equal(t, "타깃", stored.Author)
	assert.NotEqual(t, admin.ID, stored.UserID)
}

func TestSubmitProxyRequiresAdmin(t *testing.T) {
	posts := newStubPostStore()
	gold := profile(model.RoleGold, "gold@example.com", "")
	target := profile(model.RoleSilver, "target@example.com", "")
	pub := NewPublisher(posts, &stubProfileStore{profiles: map[string]model.Profile{
		target.Email: target,
	}})

	_, err := pub.Submit(context.Background(), SubmitInput{
		Acting:      gold,
		TargetEmail: target.Email,
		Category:    "자유수다",
		Title:       "제목",
	})
	require.ErrorIs(t, err, interview.ErrPermissionDenied)
	assert.Equal(t, 0, posts.creates)
}

func TestSubmitProxyUnknownTarget(t *testing.T) {
	posts := newStubPostStore()
	admin := profile(model.RoleAdmin, "admin@example.com", "")
	pub := NewPublisher(posts, &stubProfileStore{profiles: map[string]model.Profile{}})

	_, err := pub.Submit(context.Background(), SubmitInput{
		Acting:      admin,
		TargetEmail: "nobody@example.com",
		Category:    "자유수다",
		Title:       "제목",
	})
	require.ErrorIs(t, err, interview.ErrNotFound)
	// lookup failure aborts before any write
	assert.Equal(t, 0, posts.creates)
}

func TestSubmitRestrictedTierGate(t *testing.T) {
	posts := newStubPostStore()
	pub := NewPublisher(posts, &stubProfileStore{})

	_, err := pub.Submit(context.Background(), SubmitInput{
		Acting:   profile(model.RoleSilver, "silver@example.com", ""),
		Category: "실전수익인증",
		Title:    "제목",
	})
	require.ErrorIs(t, err, interview.ErrPermissionDenied)
	assert.Equal(t, 0, posts.creates)

	_, err = pub.Submit(context.Background(), SubmitInput{
		Acting:   profile(model.RoleGold, "gold@example.com", ""),
		Category: "실전수익인증",
		Title:    "제목",
	})
	require.NoError(t, err)
}

// An admin may proxy into a restricted category even when the target lacks
// the tier.
func TestSubmitProxyAdminOverridesTier(t *testing.T) {
	posts := newStubPostStore()
	admin := profile(model.RoleAdmin, "admin@example.com", "")
	target := profile(model.RoleSilver, "target@example.com", "")
	pub := NewPublisher(posts, &stubProfileStore{profiles: map[string]model.Profile{
		target.Email: target,
	}})

	_, err := pub.Submit(context.Background(), SubmitInput{
		Acting:      admin,
		TargetEmail: target.Email,
		Category:    "비공개노하우",
		Title:       "제목",
	})
	require.NoError(t, err)
}

func TestSubmitAuthorAliasOverride(t *testing.T) {
	posts := newStubPostStore()
	pub := NewPublisher(posts, &stubProfileStore{})

	id, err := pub.Submit(context.Background(), SubmitInput{
		Acting:      profile(model.RoleSilver, "user@example.com", "닉네임"),
		AuthorAlias: "  익명의 제보자  ",
		Category:    "강팔이피해사례",
		Title:       "제목",
	})
	require.NoError(t, err)
	assert.Equal(t, "익명의 제보자", posts.posts[id].Author)
}

func TestSubmitCreateFailure(t *testing.T) {
	posts := newStubPostStore()
	posts.createErr = errors.New("connection reset")
	pub := NewPublisher(posts, &stubProfileStore{})

	_, err := pub.Submit(context.Background(), SubmitInput{
		Acting:   profile(model.RoleSilver, "user@example.com", ""),
		Category: "자유수다",
		Title:    "제목",
	})
	require.ErrorIs(t, err, interview.ErrSubmissionFailed)
}

func TestReviseOwnerOnly(t *testing.T) {
	posts := newStubPostStore()
	owner := profile(model.RoleSilver, "owner@example.com", "주인")
	other := profile(model.RoleSilver, "other@example.com", "남")
	pub := NewPublisher(posts, &stubProfileStore{})

	id, err := pub.Submit(context.Background(), SubmitInput{
		Acting: owner, Category: "자유수다", Title: "원래 제목",
	})
	require.NoError(t, err)

	err = pub.Revise(context.Background(), id, ReviseInput{
		Acting: other, Category: "자유수다", Title: "탈취",
	})
	require.ErrorIs(t, err, interview.ErrPermissionDenied)
	assert.Equal(t, "원래 제목", posts.posts[id].Title)

	err = pub.Revise(context.Background(), id, ReviseInput{
		Acting: owner, Category: "자유수다", Title: "수정된 제목",
	})
	require.NoError(t, err)
	assert.Equal(t, "수정된 제목", posts.posts[id].Title)
	assert.Equal(t, owner.ID, posts.posts[id].UserID)
}

func TestReviseAdminKeepsAuthor(t *testing.T) {
	posts := newStubPostStore()
	owner := profile(model.RoleSilver, "owner@example.com", "주인")
	admin := profile(model.RoleAdmin, "admin@example.com", "관리자")
	pub := NewPublisher(posts, &stubProfileStore{})

	id, err := pub.Submit(context.Background(), SubmitInput{
		Acting: owner, Category: "자유수다", Title: "제목",
	})
	require.NoError(t, err)

	err = pub.Revise(context.Background(), id, ReviseInput{
		Acting: admin, Category: "자유수다", Title: "운영자 수정",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, posts.posts[id].UserID)
	assert.Equal(t, "주인", posts.posts[id].Author)
}

func TestReviseUnknownPost(t *testing.T) {
	pub := NewPublisher(newStubPostStore(), &stubProfileStore{})
	err := pub.Revise(context.Background(), uuid.New(), ReviseInput{
		Acting: profile(model.RoleAdmin, "admin@example.com", ""),
	})
	require.ErrorIs(t, err, interview.ErrNotFound)
}
