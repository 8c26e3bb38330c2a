package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmlaogao/portal/internal/domain"
)

func TestMembersLoadAllEmptyByDefault(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	members, err := s.Members.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMembersReplaceAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	in := []domain.Member{
		{Username: "alice", Password: "s3cret", StartDate: "2026-01-01 00:00:00", EndDate: "2026-12-31 23:59:59"},
		{Username: "wechat_bob", Password: "", StartDate: "2026-01-01 00:00:00", EndDate: "2999-01-01 00:00:00"},
	}
	require.NoError(t, s.Members.ReplaceAll(ctx, in))

	out, err := s.Members.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMembersEmptyPasswordSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.Members.ReplaceAll(ctx, []domain.Member{
		{Username: "wechat_bob", Password: "", StartDate: "2026-01-01 00:00:00", EndDate: "2999-01-01 00:00:00"},
	}))

	m, err := s.Members.Find(ctx, "wechat_bob")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.Passwordless())
}

func TestMembersFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.Members.ReplaceAll(ctx, []domain.Member{
		{Username: "alice", Password: "pw", StartDate: "2026-01-01 00:00:00", EndDate: "2026-12-31 00:00:00"},
	}))

	m, err := s.Members.Find(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "pw", m.Password)

	missing, err := s.Members.Find(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
