package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFactory_NewPair(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	f := &credentialFactory{now: func() time.Time { return fixed }}

	pair, err := f.NewPair()
	require.NoError(t, err)

	assert.False(t, pair.Empty())
	assert.True(t, strings.HasPrefix(pair.Email, "device-1773484200-"))
	assert.True(t, strings.HasSuffix(pair.Email, "@"+emailDomain))

	// 32 bytes of raw URL-safe base64.
	assert.Len(t, pair.Password, 43)
}

func TestCredentialFactory_NewPair_Unique(t *testing.T) {
	f := NewCredentialFactory()

	first, err := f.NewPair()
	require.NoError(t, err)
	second, err := f.NewPair()
	require.NoError(t, err)

	assert.NotEqual(t, first.Email, second.Email)
	assert.NotEqual(t, first.Password, second.Password)
}
