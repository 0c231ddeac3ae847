package store

import (
	"context"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

type DeviceStore interface {
	Status(ctx context.Context) (types.DeviceStatus, error)
}
