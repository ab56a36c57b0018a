// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/MKhiriev/sterling-client/models"
)

type authService struct {
	adapter adapter.ServerAdapter
	session Session
	now     func() time.Time
	logger  *logger.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewAuthService(serverAdapter adapter.ServerAdapter, session Session, log *logger.Logger) AuthService {
	return &authService{adapter: serverAdapter, session: session, now: time.Now, logger: log}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Login").Str("email", req.Email).Msg("login failed")
		return models.User{}, loginError(err)
	}

	if err = a.session.Begin(ctx, resp.AccessToken); err != nil {
		return models.User{}, fmt.Errorf("store session token: %w", err)
	}

	user := resp.User
	if user.ID == 0 {
		// some deployments answer with the token only
		if user, err = a.adapter.CurrentUser(ctx); err != nil {
			a.logger.Err(err).Str("func", "*authService.Login").Msg("error fetching current user")
			return models.User{}, err
		}
	}

	a.setUser(&user)
	return user, nil
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	if _, err := a.adapter.Signup(ctx, req); err != nil {
		a.logger.Err(err).Str("func", "*authService.Signup").Str("email", req.Email).Msg("signup failed")
		return models.User{}, err
	}

	return a.Login(ctx, req.LoginRequest())
}

func (a *authService) RestoreSession(ctx context.Context) (models.User, error) {
	raw := a.session.Token(ctx)
	if raw == "" {
		return models.User{}, ErrNoSession
	}

	// opaque tokens are left to the server to judge
	if token, err := utils.ParseUnverifiedToken(raw); err == nil && token.Expired(a.now()) {
		a.logger.Info().Str("func", "*authService.RestoreSession").Msg("stored token expired")
		a.drop(ctx)
		return models.User{}, ErrTokenIsExpired
	}

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.RestoreSession").Msg("session check failed")
		if rejected(err) {
			a.drop(ctx)
		}
		return models.User{}, err
	}

	a.setUser(&user)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.setUser(nil)
	return a.session.End(ctx)
}

func (a *authService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

func (a *authService) setUser(user *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
}

func (a *authService) drop(ctx context.Context) {
	a.setUser(nil)
	if err := a.session.End(ctx); err != nil {
		a.logger.Err(err).Str("func", "*authService.drop").Msg("error clearing session")
	}
}

// rejected reports whether the server answered and refused the token, as
// opposed to not being reachable.
func rejected(err error) bool {
	var apiErr *adapter.APIError
	return errors.As(err, &apiErr) || errors.Is(err, adapter.ErrSessionExpired)
}

// loginError keeps transport failures as they are and turns any refusal by
// the server into ErrInvalidCredentials.
func loginError(err error) error {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return err
}
