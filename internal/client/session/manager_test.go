package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/client/tokenstore"
	"github.com/mvolkova/taskquest/internal/logging"
)

type fakeLogoutClient struct {
	LogoutErr error

	Calls           int
	LastRefreshToken string
}

func (f *fakeLogoutClient) Logout(ctx context.Context, refreshToken string) error {
	f.Calls++
	f.LastRefreshToken = refreshToken
	return f.LogoutErr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newManager(t *testing.T, strategy StartupStrategy) (*Manager, *tokenstore.MemStore, *fakeLogoutClient) {
	t.Helper()
	tokens := tokenstore.NewMemStore()
	client := &fakeLogoutClient{}
	return NewManager(tokens, client, strategy, logging.NewDefault()), tokens, client
}

func TestManager_StartsUnknown(t *testing.T) {
	m, _, _ := newManager(t, StartupTrustToken)
	assert.Equal(t, StateUnknown, m.State())
	assert.False(t, m.Settled())
	assert.False(t, m.IsAuthenticated())
}

func TestInit_NoToken_SettlesAnonymous(t *testing.T) {
	m, _, _ := newManager(t, StartupTrustToken)

	m.Init(context.Background())

	assert.Equal(t, StateAnonymous, m.State())
	assert.True(t, m.Settled())
	assert.Nil(t, m.User())
}

func TestInit_TrustStrategy_AcceptsAnyToken(t *testing.T) {
	m, tokens, _ := newManager(t, StartupTrustToken)
	require.NoError(t, tokens.Save("opaque-not-a-jwt", "r"))

	m.Init(context.Background())

	assert.True(t, m.IsAuthenticated())
	assert.Nil(t, m.User(), "no login happened this session")
}

func TestInit_ValidateStrategy_KeepsUnexpiredToken(t *testing.T) {
	m, tokens, _ := newManager(t, StartupValidateToken)
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour)), "r"))

	m.Init(context.Background())

	assert.True(t, m.IsAuthenticated())
	assert.NotEmpty(t, tokens.Access())
}

func TestInit_ValidateStrategy_ClearsExpiredToken(t *testing.T) {
	m, tokens, _ := newManager(t, StartupValidateToken)
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(-time.Hour)), "r"))

	m.Init(context.Background())

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, tokens.Access())
	assert.Empty(t, tokens.Refresh())
}

func TestInit_ValidateStrategy_ClearsMalformedToken(t *testing.T) {
	m, tokens, _ := newManager(t, StartupValidateToken)
	require.NoError(t, tokens.Save("garbage", "r"))

	m.Init(context.Background())

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, tokens.Access())
}

func TestSetUser_Transitions(t *testing.T) {
	m, _, _ := newManager(t, StartupTrustToken)
	m.Init(context.Background())
	require.Equal(t, StateAnonymous, m.State())

	u := &models.User{ID: "u1", Email: "ann@example.com"}
	m.SetUser(u)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, u, m.User())

	m.SetUser(nil)
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.User())
}

func TestLogout_ClearsTokensAndUser(t *testing.T) {
	m, tokens, client := newManager(t, StartupTrustToken)
	require.NoError(t, tokens.Save("acc", "ref"))
	m.Init(context.Background())
	m.SetUser(&models.User{ID: "u1"})

	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.User())
	assert.Empty(t, tokens.Access())
	assert.Empty(t, tokens.Refresh())
	assert.Equal(t, 1, client.Calls)
	assert.Equal(t, "ref", client.LastRefreshToken)
}

func TestLogout_ServerFailureStillClearsLocally(t *testing.T) {
	m, tokens, client := newManager(t, StartupTrustToken)
	client.LogoutErr = errors.New("boom")
	require.NoError(t, tokens.Save("acc", "ref"))
	m.SetUser(&models.User{ID: "u1"})

	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, tokens.Access())
}

func TestLogout_IdempotentFromAnonymous(t *testing.T) {
	m, _, client := newManager(t, StartupTrustToken)
	m.Init(context.Background())

	require.NoError(t, m.Logout(context.Background()))
	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	assert.Zero(t, client.Calls, "no refresh token stored, no server call")
}

func TestLogout_NilClientOnlyClearsLocalState(t *testing.T) {
	tokens := tokenstore.NewMemStore()
	require.NoError(t, tokens.Save("acc", "ref"))
	m := NewManager(tokens, nil, StartupTrustToken, logging.NewDefault())
	m.Init(context.Background())

	require.NoError(t, m.Logout(context.Background()))
	assert.Empty(t, tokens.Access())
}
