// Package remotetest is an in-memory stand-in for the billed API: known
// accounts log in, unknown ones are rejected until created, and receipt
// uploads hand back generated record keys. Tests and the offline mode use it
// in place of the HTTP client.
package remotetest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/remote"
)

// ErrUserNotFound is what Login rejects unknown accounts with.
var ErrUserNotFound = errors.New("remotetest: user not found")

// Fake implements remote.Client in memory.
type Fake struct {
	mu        sync.Mutex
	passwords map[string]string
	bills     map[string]model.Bill
}

// New returns an empty fake with no known accounts.
func New() *Fake {
	return &Fake{
		passwords: make(map[string]string),
		bills:     make(map[string]model.Bill),
	}
}

// Seed registers an account without going through Users().Create.
func (f *Fake) Seed(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwords[email] = password
}

// Login accepts any known email with the matching password and returns a
// fresh opaque token.
func (f *Fake) Login(_ context.Context, creds remote.Credentials) (remote.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	password, ok := f.passwords[creds.Email]
	if !ok {
		return remote.Token{}, ErrUserNotFound
	}
	if password != creds.Password {
		return remote.Token{}, errors.New("remotetest: wrong password")
	}
	return remote.Token{JWT: uuid.NewString()}, nil
}

// Users returns the account operations.
func (f *Fake) Users() remote.Users {
	return fakeUsers{f}
}

// Bills returns the bill operations.
func (f *Fake) Bills() remote.Bills {
	return fakeBills{f}
}

// Bill returns the stored bill for id, for test assertions.
func (f *Fake) Bill(id string) (model.Bill, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bill, ok := f.bills[id]
	return bill, ok
}

type fakeUsers struct {
	fake *Fake
}

func (u fakeUsers) Create(_ context.Context, user remote.NewUser) error {
	u.fake.mu.Lock()
	defer u.fake.mu.Unlock()
	if _, ok := u.fake.passwords[user.Email]; ok {
		return errors.New("remotetest: user already exists")
	}
	u.fake.passwords[user.Email] = user.Password
	return nil
}

type fakeBills struct {
	fake *Fake
}

func (b fakeBills) CreateWithReceipt(_ context.Context, email, fileName string, content io.Reader) (remote.Receipt, error) {
	if _, err := io.Copy(io.Discard, content); err != nil {
		return remote.Receipt{}, fmt.Errorf("remotetest, create file error: %v", err)
	}

	b.fake.mu.Lock()
	defer b.fake.mu.Unlock()
	receipt := remote.Receipt{
		Key:      uuid.NewString(),
		FileURL:  "https://localhost/storage/" + fileName,
		FileName: fileName,
	}
	b.fake.bills[receipt.Key] = model.Bill{Email: email, FileURL: receipt.FileURL, FileName: fileName}
	return receipt, nil
}

func (b fakeBills) Update(_ context.Context, id string, bill model.Bill) error {
	b.fake.mu.Lock()
	defer b.fake.mu.Unlock()
	b.fake.bills[id] = bill
	return nil
}
