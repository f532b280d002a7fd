package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
)

type fakeIdentity struct {
	mu sync.Mutex

	verifyUser *models.User
	verifyErr  error
	verifyHook func()
	verified   []string

	loginToken *models.Token
	loginErr   error
	logins     []models.Credentials

	registerUser *models.User
	registerErr  error
	registered   []models.Registration
}

func (f *fakeIdentity) VerifyToken(_ context.Context, token string) (*models.User, error) {
	f.mu.Lock()
	f.verified = append(f.verified, token)
	hook := f.verifyHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.verifyUser, f.verifyErr
}

func (f *fakeIdentity) Login(_ context.Context, creds models.Credentials) (*models.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, creds)
	return f.loginToken, f.loginErr
}

func (f *fakeIdentity) Register(_ context.Context, data models.Registration) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, data)
	return f.registerUser, f.registerErr
}

func (f *fakeIdentity) verifyCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verified)
}

type memTokens struct {
	mu       sync.Mutex
	token    string
	getErr   error
	setErr   error
	clearErr error
	clears   int
}

func (m *memTokens) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.getErr
}

func (m *memTokens) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	return nil
}

func (m *memTokens) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	return nil
}

func (m *memTokens) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}
