package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/mock"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/internal/tui"
	"github.com/MKhiriev/sterling-client/models"
)

// scriptedUI replays prepared results and records what it was shown.
type scriptedUI struct {
	logins  []loginStep
	exits   []tui.Exit
	notices []string
	users   []models.User
}

type loginStep struct {
	user models.User
	err  error
}

func (u *scriptedUI) LoginFlow(_ context.Context, notice string) (models.User, error) {
	u.notices = append(u.notices, notice)
	if len(u.logins) == 0 {
		return models.User{}, tui.ErrUserQuit
	}
	step := u.logins[0]
	u.logins = u.logins[1:]
	return step.user, step.err
}

func (u *scriptedUI) MainLoop(_ context.Context, user models.User) (tui.Exit, error) {
	u.users = append(u.users, user)
	if len(u.exits) == 0 {
		return tui.ExitQuit, nil
	}
	exit := u.exits[0]
	u.exits = u.exits[1:]
	return exit, nil
}

type appFixture struct {
	auth *mock.MockAuthService
	data *mock.MockDataSynchronizer
	job  *mock.MockReconcileJob
	ui   *scriptedUI
	app  *App
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &appFixture{
		auth: mock.NewMockAuthService(ctrl),
		data: mock.NewMockDataSynchronizer(ctrl),
		job:  mock.NewMockReconcileJob(ctrl),
		ui:   &scriptedUI{},
	}
	services := &service.ClientServices{AuthService: f.auth, Data: f.data, ReconcileJob: f.job}

	app, err := NewApp(services, f.ui, config.ClientWorkers{ReconcileInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	f.app = app
	return f
}

var ann = models.User{ID: 1, Name: "Ann"}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	f := newAppFixture(t)
	gomock.InOrder(
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(ann, nil),
		f.data.EXPECT().Load(gomock.Any()).Return(service.StateReady),
		f.job.EXPECT().Start(gomock.Any(), time.Minute),
		f.job.EXPECT().Stop(),
	)

	require.NoError(t, f.app.run(context.Background()))

	assert.Empty(t, f.ui.notices)
	assert.Equal(t, []models.User{ann}, f.ui.users)
}

func TestApp_LogoutLoopsBackToLogin(t *testing.T) {
	f := newAppFixture(t)
	f.ui.logins = []loginStep{{user: ann}}
	f.ui.exits = []tui.Exit{tui.ExitLogout}
	gomock.InOrder(
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, service.ErrNoSession),
		f.data.EXPECT().Load(gomock.Any()).Return(service.StateReady),
		f.job.EXPECT().Start(gomock.Any(), time.Minute),
		f.job.EXPECT().Stop(),
		f.auth.EXPECT().Logout(gomock.Any()).Return(nil),
		f.data.EXPECT().Reset(),
	)

	require.NoError(t, f.app.run(context.Background()))

	assert.Equal(t, []string{"", NoticeSignedOut}, f.ui.notices)
}

func TestApp_ExpiredSessionNotice(t *testing.T) {
	f := newAppFixture(t)
	f.ui.exits = []tui.Exit{tui.ExitSessionExpired}
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(ann, nil)
	f.data.EXPECT().Load(gomock.Any()).Return(service.StateEmpty)
	f.job.EXPECT().Start(gomock.Any(), time.Minute)
	f.job.EXPECT().Stop()
	f.auth.EXPECT().Logout(gomock.Any()).Return(errors.New("disk full"))
	f.data.EXPECT().Reset()

	require.NoError(t, f.app.run(context.Background()))

	assert.Equal(t, []string{NoticeSessionExpired}, f.ui.notices)
}

func TestApp_LoginFlowError(t *testing.T) {
	f := newAppFixture(t)
	boom := errors.New("terminal gone")
	f.ui.logins = []loginStep{{err: boom}}
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.User{}, service.ErrTokenIsExpired)

	err := f.app.run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{NoticeSessionExpired}, f.ui.notices)
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, tui.ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestRestoreNotice(t *testing.T) {
	assert.Empty(t, restoreNotice(service.ErrNoSession))
	assert.Equal(t, NoticeSessionExpired, restoreNotice(service.ErrTokenIsExpired))
	assert.Equal(t, NoticeSessionExpired, restoreNotice(&adapter.APIError{StatusCode: 401, Message: "Not authenticated"}))
	assert.Equal(t, "Could not restore your session: network error", restoreNotice(adapter.ErrNetwork))
}
