// Package cloud wraps the external media host behind a narrow capability
// interface. The rest of the system never sees the provider SDK: services
// store opaque asset ids and URLs, and tests substitute a fake.
package cloud

import (
	"context"
	"fmt"
	"io"
)

// Asset is a stored binary on the media host.
type Asset struct {
	URL     string
	CloudID string
}

type Gateway interface {
	// Store uploads a binary and returns its durable URL and asset id.
	Store(ctx context.Context, file io.Reader, folder string) (*Asset, error)
	// Transform derives a new asset by applying params to an existing
	// source URL.
	Transform(ctx context.Context, sourceURL string, params Params) (*Asset, error)
	// Retransform builds a fresh delivery URL for an already-stored asset
	// with new params. The asset id is unchanged.
	Retransform(ctx context.Context, cloudID string, params Params) (string, error)
	// Delete removes a stored asset by its id.
	Delete(ctx context.Context, cloudID string) error
}

// PhotoFolder and friends name the remote folder layout per user.
func PhotoFolder(userID uint) string {
	return fmt.Sprintf("imagehub/user_%d/photos", userID)
}

func QRCodeFolder(userID uint) string {
	return fmt.Sprintf("imagehub/user_%d/qr_codes", userID)
}

const AvatarFolder = "imagehub/avatars"
