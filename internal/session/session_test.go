package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokaclean/backoffice/internal/domain"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	s, err := m.Create(ctx, "core-token", domain.ActorAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	loaded, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "core-token", loaded.Token)
	assert.Equal(t, domain.ActorAdmin, loaded.Actor)

	loaded.RecordUsage(22)
	loaded.RecordUsage(23)
	require.NoError(t, loaded.Save(ctx))

	again, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{22, 23}, again.UsageSamples)

	require.NoError(t, again.Clear(ctx))
	assert.Empty(t, again.Token)

	_, err = m.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadUnknownSession(t *testing.T) {
	m := NewManager(NewMemoryStore())
	_, err := m.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordUsageBoundsAndCap(t *testing.T) {
	s := &Session{}
	s.RecordUsage(-1)
	s.RecordUsage(24)
	assert.Empty(t, s.UsageSamples)

	for i := 0; i < MaxUsageSamples+10; i++ {
		s.RecordUsage(i % 24)
	}
	assert.Len(t, s.UsageSamples, MaxUsageSamples)
	// oldest samples were dropped first
	assert.Equal(t, 10%24, s.UsageSamples[0])
}
