package service

import (
	"context"
	"io"

	"github.com/billed-app/billed-client/internal/model"
	"github.com/billed-app/billed-client/internal/remote"
)

// Bills runs the remote half of expense submission.
type Bills struct {
	client remote.Client
}

// NewBills builds a bills service. client may be nil; every operation then
// fails with remote.ErrNoClient.
func NewBills(client remote.Client) *Bills {
	return &Bills{
		client: client,
	}
}

// UploadReceipt uploads an already validated receipt and returns the created
// record's key and file location.
func (b *Bills) UploadReceipt(ctx context.Context, email, fileName string, content io.Reader) (remote.Receipt, error) {
	if b.client == nil {
		return remote.Receipt{}, remote.ErrNoClient
	}
	return b.client.Bills().CreateWithReceipt(ctx, email, fileName, content)
}

// Update submits the assembled bill onto the record id.
func (b *Bills) Update(ctx context.Context, id string, bill model.Bill) error {
	if b.client == nil {
		return remote.ErrNoClient
	}
	return b.client.Bills().Update(ctx, id, bill)
}
