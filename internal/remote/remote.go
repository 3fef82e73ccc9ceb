// Package remote is the client for the billed API. The interfaces mirror the
// surface the containers consume: login, account creation, and the two bill
// operations.
package remote

import (
	"context"
	"errors"
	"io"

	"github.com/billed-app/billed-client/internal/model"
)

// ErrNoClient is the configuration error every operation fails with when no
// client was wired in. It is never swallowed into a silent success.
var ErrNoClient = errors.New("remote: client is not configured")

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the login response.
type Token struct {
	JWT string `json:"jwt"`
}

// NewUser is the account-provisioning payload. Name is the local part of the
// email.
type NewUser struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Receipt describes an uploaded receipt: the key of the bill record created
// for it and where the file ended up.
type Receipt struct {
	Key      string `json:"key"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

//go:generate mockery --name=Client

// Client is the remote API entry point.
type Client interface {
	Login(ctx context.Context, creds Credentials) (Token, error)
	Users() Users
	Bills() Bills
}

//go:generate mockery --name=Users

// Users exposes account operations.
type Users interface {
	Create(ctx context.Context, user NewUser) error
}

//go:generate mockery --name=Bills

// Bills exposes bill operations.
type Bills interface {
	// CreateWithReceipt uploads a receipt and creates the bill record that
	// owns it.
	CreateWithReceipt(ctx context.Context, email, fileName string, content io.Reader) (Receipt, error)
	// Update submits the bill's fields onto the record created for the
	// receipt.
	Update(ctx context.Context, id string, bill model.Bill) error
}
