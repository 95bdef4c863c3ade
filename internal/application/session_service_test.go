package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/portal-cli/internal/adapters/repo/toml"
	filesecrets "github.com/bnema/portal-cli/internal/adapters/secrets/file"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func testUser() domain.User {
	return domain.User{UserID: 7, Name: "Ada", Email: "ada@example.com", Role: domain.RoleClient}
}

type sessionDeps struct {
	api     *mocks.MockSessionAPI
	repo    *mocks.MockSessionRepository
	secrets *mocks.MockSecretStore
	hook    *logtest.Hook
}

func newTestSessionService(t *testing.T) (*SessionService, sessionDeps) {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	deps := sessionDeps{
		api:     mocks.NewMockSessionAPI(t),
		repo:    mocks.NewMockSessionRepository(t),
		secrets: mocks.NewMockSecretStore(t),
		hook:    hook,
	}
	svc := NewSessionService(nil, deps.api, deps.repo, deps.secrets, fixedClock{now: sessionNow}, logger)

	return svc, deps
}

func TestSessionServiceLoginPersistsTokenAndUser(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	credentials := domain.Credentials{Email: "ada@example.com", Password: "hunter2"}

	deps.api.EXPECT().Login(mockAnyContext(), credentials).Return(domain.AuthResult{User: testUser(), Token: "tok-123"}, nil).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, "tok-123").Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), domain.SessionRecord{
		User:     testUser(),
		TokenRef: domain.SessionTokenRef,
		SavedAt:  sessionNow,
	}).Return(nil).Once()

	session, err := svc.Login(context.Background(), credentials)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, domain.SessionAuthenticated, svc.Current().State())

	token, err := svc.State().Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestSessionServiceLoginGeneratesTokenWhenBackendSendsNone(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)

	var stored string
	deps.api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: testUser()}, nil).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, value string) { stored = value }).
		Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	session, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, stored, session.Token)
}

func TestSessionServiceLoginFailureLeavesSessionAnonymous(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	deps.api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{}, domain.ErrValidation).Once()

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, svc.Current().IsAuthenticated())
}

func TestSessionServiceLoginRejectsInvalidUser(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	deps.api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: domain.User{Email: "x@example.com"}, Token: "tok"}, nil).Once()

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "x@example.com"})
	require.Error(t, err)
	assert.False(t, svc.Current().IsAuthenticated())
}

func TestSessionServiceLoginRollsBackTokenWhenSaveFails(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	saveErr := errors.New("disk full")

	deps.api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: testUser(), Token: "tok-123"}, nil).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, "tok-123").Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr).Once()
	deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.ErrorIs(t, err, saveErr)
	assert.False(t, svc.Current().IsAuthenticated())
}

func TestSessionServiceLoginRollbackRestoresPreviousToken(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "old-token"})

	saveErr := errors.New("disk full")
	rollbackErr := errors.New("pass locked")
	deps.api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: testUser(), Token: "new-token"}, nil).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, "new-token").Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, "old-token").Return(rollbackErr).Once()

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.ErrorIs(t, err, saveErr)
	require.ErrorIs(t, err, rollbackErr)
	assert.Equal(t, "old-token", svc.Current().Token)
}

func TestSessionServiceRegisterEstablishesSession(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	registration := domain.Registration{Name: "Ada", Email: "ada@example.com", Password: "hunter2"}

	deps.api.EXPECT().Register(mockAnyContext(), registration).Return(domain.AuthResult{User: testUser(), Token: "tok-9"}, nil).Once()
	deps.secrets.EXPECT().Put(mockAnyContext(), domain.SessionTokenRef, "tok-9").Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	session, err := svc.Register(context.Background(), registration)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID())
}

func TestSessionServiceLogoutTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Twice()
	deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Twice()

	svc.Logout(context.Background())
	first := svc.Current()
	svc.Logout(context.Background())

	assert.Equal(t, first, svc.Current())
	assert.Equal(t, domain.SessionAnonymous, svc.Current().State())
	assert.Empty(t, deps.hook.AllEntries())
}

func TestSessionServiceLogoutLogsCleanupFailures(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	deps.repo.EXPECT().Clear(mockAnyContext()).Return(errors.New("permission denied")).Once()
	deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()

	svc.Logout(context.Background())

	require.NotNil(t, deps.hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, deps.hook.LastEntry().Level)
}

func TestSessionServiceExpireClearsSessionAndLogs(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()

	svc.Expire(context.Background())

	assert.False(t, svc.Current().IsAuthenticated())
	require.NotNil(t, deps.hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, deps.hook.LastEntry().Level)
}

func TestSessionServiceRequireUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestSessionService(t)

	_, err := svc.RequireUser()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	got, err := svc.RequireUser()
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestSessionServiceUpdateProfileMergesAndPersists(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	phone := "+33 1 23 45 67 89"
	patch := domain.UserPatch{Phone: &phone}
	want := testUser()
	want.Phone = phone

	deps.api.EXPECT().UpdateProfile(mockAnyContext(), int64(7), patch).Return(nil).Once()
	deps.repo.EXPECT().Save(mockAnyContext(), domain.SessionRecord{User: want, TokenRef: domain.SessionTokenRef, SavedAt: sessionNow}).Return(nil).Once()

	session, err := svc.UpdateProfile(context.Background(), 7, patch)
	require.NoError(t, err)
	assert.Equal(t, phone, session.User.Phone)
	assert.Equal(t, "Ada", session.User.Name)
	assert.Equal(t, "tok", session.Token)
}

func TestSessionServiceUpdateProfileRejectsPatchThatInvalidatesUser(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	empty := ""
	_, err := svc.UpdateProfile(context.Background(), 7, domain.UserPatch{Email: &empty})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.ErrorContains(t, err, "update profile")

	deps.api.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, "ada@example.com", svc.Current().User.Email)
}

func TestSessionStateApplyProfileKeepsValidUser(t *testing.T) {
	t.Parallel()

	state := NewSessionState()
	user := testUser()
	state.set(domain.Session{User: &user, Token: "tok"})

	empty := ""
	_, applied, err := state.applyProfile(7, domain.UserPatch{Email: &empty})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.False(t, applied)
	assert.Equal(t, "ada@example.com", state.Snapshot().User.Email)
}

func TestSessionServiceUpdateProfileForAnotherUserLeavesSession(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: "tok"})

	name := "Grace"
	deps.api.EXPECT().UpdateProfile(mockAnyContext(), int64(99), domain.UserPatch{Name: &name}).Return(nil).Once()

	session, err := svc.UpdateProfile(context.Background(), 99, domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.User.Name)
}

func TestSessionServiceChangePasswordWrapsBackendError(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	deps.api.EXPECT().ChangePassword(mockAnyContext(), int64(7), "old", "new").Return(domain.ErrValidation).Once()

	err := svc.ChangePassword(context.Background(), 7, "old", "new")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "change password")
}

func TestSessionServiceRestore(t *testing.T) {
	t.Parallel()

	validRecord := domain.SessionRecord{User: testUser(), TokenRef: domain.SessionTokenRef, SavedAt: sessionNow}

	testCases := []struct {
		name          string
		setup         func(deps sessionDeps)
		authenticated bool
		wantErr       bool
	}{
		{
			name: "valid session",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(validRecord, nil).Once()
				deps.secrets.EXPECT().Get(mockAnyContext(), domain.SessionTokenRef).Return("tok-1\n", nil).Once()
			},
			authenticated: true,
		},
		{
			name: "missing file",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(domain.SessionRecord{}, domain.ErrSessionNotFound).Once()
			},
		},
		{
			name: "corrupt file",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(domain.SessionRecord{}, domain.ErrInvalidSession).Once()
				deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
				deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()
			},
		},
		{
			name: "partial user",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(domain.SessionRecord{User: domain.User{UserID: 7}, TokenRef: domain.SessionTokenRef}, nil).Once()
				deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
				deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()
			},
		},
		{
			name: "foreign token reference",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(domain.SessionRecord{User: testUser(), TokenRef: "portal://vault/other"}, nil).Once()
				deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
				deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()
			},
		},
		{
			name: "token missing",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(validRecord, nil).Once()
				deps.secrets.EXPECT().Get(mockAnyContext(), domain.SessionTokenRef).Return("", domain.ErrSecretNotFound).Once()
				deps.repo.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
				deps.secrets.EXPECT().Delete(mockAnyContext(), domain.SessionTokenRef).Return(nil).Once()
			},
		},
		{
			name: "secret backend failure",
			setup: func(deps sessionDeps) {
				deps.repo.EXPECT().Load(mockAnyContext()).Return(validRecord, nil).Once()
				deps.secrets.EXPECT().Get(mockAnyContext(), domain.SessionTokenRef).Return("", errors.New("gpg agent down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, deps := newTestSessionService(t)
			tc.setup(deps)

			session, err := svc.Restore(context.Background())
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.authenticated, session.IsAuthenticated())
			assert.Equal(t, tc.authenticated, svc.Current().IsAuthenticated())
		})
	}
}

func TestSessionServiceRestoreTrimsToken(t *testing.T) {
	t.Parallel()

	svc, deps := newTestSessionService(t)
	deps.repo.EXPECT().Load(mockAnyContext()).Return(domain.SessionRecord{User: testUser(), TokenRef: domain.SessionTokenRef}, nil).Once()
	deps.secrets.EXPECT().Get(mockAnyContext(), domain.SessionTokenRef).Return("tok-1\n", nil).Once()

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
}

func TestSessionServiceTokenExpiry(t *testing.T) {
	t.Parallel()

	svc, _ := newTestSessionService(t)

	_, ok := svc.TokenExpiry()
	assert.False(t, ok)

	expiry := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	user := testUser()
	svc.State().set(domain.Session{User: &user, Token: signed})

	got, ok := svc.TokenExpiry()
	require.True(t, ok)
	assert.True(t, expiry.Equal(got))

	svc.State().set(domain.Session{User: &user, Token: "opaque"})
	_, ok = svc.TokenExpiry()
	assert.False(t, ok)
}

func TestSessionServiceLoginRestoreRoundTripOnDisk(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	cfg := viper.New()
	cfg.Set(tomlrepo.SessionPathKey, filepath.Join(home, "session.toml"))
	repo, err := tomlrepo.NewSessionRepository(cfg)
	require.NoError(t, err)
	secrets := filesecrets.NewStore(filepath.Join(home, "secrets"))

	logger, _ := logtest.NewNullLogger()
	api := mocks.NewMockSessionAPI(t)
	api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: testUser(), Token: "tok-disk"}, nil).Once()

	first := NewSessionService(nil, api, repo, secrets, fixedClock{now: sessionNow}, logger)
	_, err = first.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.NoError(t, err)

	second := NewSessionService(nil, mocks.NewMockSessionAPI(t), repo, secrets, fixedClock{now: sessionNow}, logger)
	session, err := second.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-disk", session.Token)
	assert.Equal(t, testUser(), *session.User)

	second.Logout(context.Background())

	third := NewSessionService(nil, mocks.NewMockSessionAPI(t), repo, secrets, fixedClock{now: sessionNow}, logger)
	session, err = third.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSessionServiceInvalidProfileUpdateSurvivesRestoreOnDisk(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	cfg := viper.New()
	cfg.Set(tomlrepo.SessionPathKey, filepath.Join(home, "session.toml"))
	repo, err := tomlrepo.NewSessionRepository(cfg)
	require.NoError(t, err)
	secrets := filesecrets.NewStore(filepath.Join(home, "secrets"))

	logger, _ := logtest.NewNullLogger()
	api := mocks.NewMockSessionAPI(t)
	api.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AuthResult{User: testUser(), Token: "tok-disk"}, nil).Once()

	first := NewSessionService(nil, api, repo, secrets, fixedClock{now: sessionNow}, logger)
	_, err = first.Login(context.Background(), domain.Credentials{Email: "ada@example.com"})
	require.NoError(t, err)

	empty := ""
	_, err = first.UpdateProfile(context.Background(), 7, domain.UserPatch{Email: &empty})
	require.Error(t, err)

	second := NewSessionService(nil, mocks.NewMockSessionAPI(t), repo, secrets, fixedClock{now: sessionNow}, logger)
	session, err := second.Restore(context.Background())
	require.NoError(t, err)
	require.True(t, session.IsAuthenticated())
	assert.Equal(t, "ada@example.com", session.User.Email)
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func mockAnyContext() interface{} {
	return mock.Anything
}
