package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sterling-client/internal/mock"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/models"
)

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)

	next, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", next.(*LoginModel).errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	user := models.User{ID: 1, Email: "ann@example.com"}
	auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret"}).
		Return(user, nil)

	var m tea.Model = NewLoginModel(context.Background(), auth)
	m = typeText(m, "  ann@example.com ")
	m, _ = m.Update(keyPress("tab"))
	m = typeText(m, "secret")

	m, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.(*LoginModel).submitting)

	// second enter while the request is in flight is ignored
	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again)

	assert.Equal(t, LoginResult{User: user}, cmd())
}

func TestLoginModel_FailureClearsPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.inputs[1].SetValue("wrong")
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrInvalidCredentials})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid credentials", m.errMsg)
	assert.Empty(t, m.inputs[1].Value())
}

func TestSignupValidation(t *testing.T) {
	ok := models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}

	tests := []struct {
		name   string
		req    models.SignupRequest
		repeat string
		want   string
	}{
		{name: "valid", req: ok, repeat: "secret", want: ""},
		{name: "missing name", req: models.SignupRequest{Email: ok.Email, Password: ok.Password}, repeat: "secret", want: "All fields are required"},
		{name: "bad email", req: models.SignupRequest{Name: "Ann", Email: "ann", Password: "secret"}, repeat: "secret", want: "Enter a valid email"},
		{name: "mismatch", req: ok, repeat: "secreT", want: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateSignup(tt.req, tt.repeat))
		})
	}
}

func TestRootModel_FinishesOnLogin(t *testing.T) {
	user := models.User{ID: 1, Name: "Ann"}
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel("")}, pageMenu, BuildInfo{})

	next, cmd := root.Update(LoginResult{User: user})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, user, next.(RootModel).user)
	assert.False(t, next.(RootModel).quitByUser)
}

func TestRootModel_Navigation(t *testing.T) {
	login := NewLoginModel(context.Background(), nil)
	root := NewRootModel(map[string]tea.Model{
		pageMenu:  NewMenuModel("Session expired"),
		pageLogin: login,
	}, pageMenu, BuildInfo{Version: "1.2.3"})

	assert.Contains(t, root.View(), "Session expired")

	next, _ := root.Update(keyPress("v"))
	assert.Contains(t, next.View(), "Version: 1.2.3")
	next, _ = next.Update(keyPress("esc"))

	next, _ = next.Update(NavigateTo{Page: pageLogin})
	assert.Same(t, login, next.(RootModel).current)

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(RootModel).quitByUser)
}
