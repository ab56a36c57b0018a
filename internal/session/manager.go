// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/sterling-client/internal/logger"
)

// TokenStore persists the bearer token.
type TokenStore interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Manager holds the session credential and sends the user to the login
// route when the credential is dropped.
type Manager struct {
	tokens    TokenStore
	navigator NavigationController
	logger    *logger.Logger

	// serialises invalidation so that concurrent 401s navigate once
	mu sync.Mutex
}

func NewManager(tokens TokenStore, navigator NavigationController, log *logger.Logger) *Manager {
	return &Manager{tokens: tokens, navigator: navigator, logger: log}
}

// Token returns the current bearer token, or "" when signed out.
func (m *Manager) Token(ctx context.Context) string {
	return m.tokens.Token(ctx)
}

// SignedIn reports whether a token is stored.
func (m *Manager) SignedIn(ctx context.Context) bool {
	return m.Token(ctx) != ""
}

// Begin stores token as the new session credential, replacing any previous
// one.
func (m *Manager) Begin(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.tokens.ClearToken(ctx); err != nil {
		m.logger.Err(err).Str("func", "*Manager.Begin").Msg("error clearing previous token")
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	if err := m.tokens.SetToken(ctx, token); err != nil {
		m.logger.Err(err).Str("func", "*Manager.Begin").Msg("error storing token")
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	return nil
}

// End drops the credential and navigates to the login route.
func (m *Manager) End(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.tokens.ClearToken(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "*Manager.End").Msg("error clearing token")
		err = fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	m.navigator.Navigate(RouteLogin)
	return err
}

// InvalidateSession is called by the request layer on a 401. The token is
// cleared and the login route requested; when several calls fail together
// only the first one navigates.
func (m *Manager) InvalidateSession(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens.Token(ctx) == "" {
		return
	}
	if err := m.tokens.ClearToken(ctx); err != nil {
		m.logger.Err(err).Str("func", "*Manager.InvalidateSession").Msg("error clearing token")
	}
	m.logger.Warn().Str("func", "*Manager.InvalidateSession").Msg("session expired")
	m.navigator.Navigate(RouteLogin)
}

// Navigate forwards route to the navigation controller.
func (m *Manager) Navigate(route string) {
	m.navigator.Navigate(route)
}
