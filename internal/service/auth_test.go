package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/mock"
	"github.com/MKhiriev/sterling-client/models"
)

// newTestAuthSvc builds an authService around mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockServerAdapter, *mock.MockSession) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSession(ctrl)

	svc := NewAuthService(mockAdapter, mockSession, logger.Nop()).(*authService)
	return svc, mockAdapter, mockSession
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-only-key"))
	require.NoError(t, err)
	return raw
}

var ann = models.User{ID: 1, Email: "ann@example.com", Name: "Ann"}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.LoginRequest{Email: " ann@example.com ", Password: "pw"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "pw"}).
			Return(models.TokenResponse{AccessToken: "tok", TokenType: "bearer", User: ann}, nil),
		mockSession.EXPECT().Begin(ctx, "tok").Return(nil),
	)

	user, err := svc.Login(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, ann, user)
	current, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, ann, current)
}

func TestAuthService_Login_FetchesUserWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.TokenResponse{AccessToken: "tok"}, nil)
	mockSession.EXPECT().Begin(ctx, "tok").Return(nil)
	mockAdapter.EXPECT().CurrentUser(ctx).Return(ann, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: ann.Email, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, ann, user)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "  ", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.TokenResponse{}, &adapter.APIError{StatusCode: http.StatusUnauthorized, Message: "Incorrect email or password"})

	_, err := svc.Login(ctx, models.LoginRequest{Email: ann.Email, Password: "bad"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestAuthService_Login_TransportErrorKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.TokenResponse{}, adapter.ErrNetwork)

	_, err := svc.Login(ctx, models.LoginRequest{Email: ann.Email, Password: "pw"})

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_SessionStoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.TokenResponse{AccessToken: "tok", User: ann}, nil)
	mockSession.EXPECT().Begin(ctx, "tok").Return(errors.New("disk full"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: ann.Email, Password: "pw"})

	require.Error(t, err)
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

// ── Signup ──

func TestAuthService_Signup_CreatesThenLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.SignupRequest{Name: "Ann", Email: ann.Email, Password: "pw"}

	gomock.InOrder(
		mockAdapter.EXPECT().Signup(ctx, req).Return(ann, nil),
		mockAdapter.EXPECT().Login(ctx, models.LoginRequest{Email: ann.Email, Password: "pw"}).
			Return(models.TokenResponse{AccessToken: "tok", User: ann}, nil),
		mockSession.EXPECT().Begin(ctx, "tok").Return(nil),
	)

	user, err := svc.Signup(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, ann, user)
}

func TestAuthService_Signup_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Signup(ctx, gomock.Any()).
		Return(models.User{}, &adapter.APIError{StatusCode: http.StatusBadRequest, Message: "Email already registered"})

	_, err := svc.Signup(ctx, models.SignupRequest{Email: ann.Email, Password: "pw"})

	assert.Equal(t, "Email already registered", adapter.UserMessage(err))
}

// ── RestoreSession ──

func TestAuthService_RestoreSession_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("")

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return(signedToken(t, time.Now().Add(time.Hour)))
	mockAdapter.EXPECT().CurrentUser(ctx).Return(ann, nil)

	user, err := svc.RestoreSession(ctx)

	require.NoError(t, err)
	assert.Equal(t, ann, user)
}

func TestAuthService_RestoreSession_OpaqueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("not-a-jwt")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(ann, nil)

	_, err := svc.RestoreSession(ctx)
	assert.NoError(t, err)
}

func TestAuthService_RestoreSession_ExpiredLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return(signedToken(t, time.Now().Add(-time.Minute)))
	mockSession.EXPECT().End(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_RestoreSession_RejectedByServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("tok")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrSessionExpired)
	mockSession.EXPECT().End(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, adapter.ErrSessionExpired)
}

func TestAuthService_RestoreSession_NetworkErrorKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("tok")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrTimeout)
	mockSession.EXPECT().End(gomock.Any()).Times(0)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, adapter.ErrTimeout)
}

// ── Logout ──

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.TokenResponse{AccessToken: "tok", User: ann}, nil)
	mockSession.EXPECT().Begin(ctx, "tok").Return(nil)
	_, err := svc.Login(ctx, models.LoginRequest{Email: ann.Email, Password: "pw"})
	require.NoError(t, err)

	mockSession.EXPECT().End(ctx).Return(nil)
	require.NoError(t, svc.Logout(ctx))

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

// ── against the fake API ──

func TestAuthService_LoginAgainstAPI(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.creds.SetToken(ctx, "stale"))
	svc := NewAuthService(e.adapter, e.session, logger.Nop())

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	// a failed login must not count as a session expiry
	assert.Empty(t, e.navigator.Routes())
	assert.Equal(t, "stale", e.creds.Token(ctx))

	user, err := svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, e.api.User, user)
	assert.Equal(t, e.api.Token(), e.creds.Token(ctx))

	restored, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, restored)
}
