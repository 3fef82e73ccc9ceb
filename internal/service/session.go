package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/remote"
	"github.com/billed-app/billed-client/internal/storage"
)

// Session runs the remote half of session establishment: authenticate, and
// when the account does not exist yet, provision it and authenticate again.
// The local half (persisting the user record) stays in the container, which
// commits it before any of these calls are made.
type Session struct {
	client remote.Client
	store  storage.Store
}

// NewSession builds a session service. client may be nil; every operation
// then fails with remote.ErrNoClient.
func NewSession(client remote.Client, store storage.Store) *Session {
	return &Session{
		client: client,
		store:  store,
	}
}

// Login authenticates user against the remote API and persists the returned
// token under the jwt key.
func (s *Session) Login(ctx context.Context, user *model.User) error {
	if s.client == nil {
		return remote.ErrNoClient
	}

	token, err := s.client.Login(ctx, remote.Credentials{Email: user.Email, Password: user.Password})
	if err != nil {
		return fmt.Errorf("session, login error: %v", err)
	}

	if err = s.store.Set(storage.KeyJWT, token.JWT); err != nil {
		return fmt.Errorf("session, login error: %v", err)
	}
	return nil
}

// Provision creates the remote account for user and retries Login. The
// account name is the local part of the email.
func (s *Session) Provision(ctx context.Context, user *model.User) error {
	if s.client == nil {
		return remote.ErrNoClient
	}

	err := s.client.Users().Create(ctx, remote.NewUser{
		Type:     string(user.Type),
		Name:     strings.Split(user.Email, "@")[0],
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return fmt.Errorf("session, provision error: %v", err)
	}
	logrus.Infof("user with %s is created", user.Email)

	return s.Login(ctx, user)
}

// Establish is the full chain: login, and on any failure fall back to
// provisioning once. The final error is returned as is; nothing downstream
// recovers it, callers log it and skip navigation.
func (s *Session) Establish(ctx context.Context, user *model.User) error {
	err := s.Login(ctx, user)
	if err == nil {
		return nil
	}
	logrus.Debugf("login failed for %s, provisioning account: %v", user.Email, err)
	return s.Provision(ctx, user)
}
