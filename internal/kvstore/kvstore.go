// Package kvstore is the blob store backing client state (cart, favorites,
// applied voucher, address book). Values are opaque JSON blobs under named
// keys, mirroring the storefront's on-device key-value storage.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
