package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokaclean/backoffice/internal/domain"
)

func TestIssueAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, expiresIn, err := m.Issue("sid-1", domain.ActorAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	sid, actor, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
	assert.Equal(t, domain.ActorAdmin, actor)
}

func TestParseRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	t.Run("wrong key", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, _, err := other.Issue("sid-1", domain.ActorUser)
		require.NoError(t, err)
		_, _, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		short := NewJWTManager("test-secret", -time.Minute)
		token, _, err := short.Issue("sid-1", domain.ActorUser)
		require.NoError(t, err)
		_, _, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := m.Parse("not.a.token")
		assert.Error(t, err)
	})
}
