package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("s3cret", time.Hour)

	id, token, err := iss.NewSession()
	require.NoError(t, err)

	got, err := iss.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerifyRejects(t *testing.T) {
	iss := NewIssuer("s3cret", time.Hour)
	_, token, err := iss.NewSession()
	require.NoError(t, err)

	t.Run("other key", func(t *testing.T) {
		_, err := NewIssuer("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := iss.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewIssuer("s3cret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		stale, err := old.Issue("0b6f0d4e-3b3a-4c1e-9d1e-6d6a3f0c9b11")
		require.NoError(t, err)

		_, err = iss.Verify(stale)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject not a session id", func(t *testing.T) {
		forged, err := iss.Issue("admin")
		require.NoError(t, err)
		_, err = iss.Verify(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
