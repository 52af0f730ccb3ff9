package service

import (
	"context"

	"github.com/atinyakov/url-registry/internal/storage"
)

//go:generate mockgen -destination=../../mocks/mock_service.go -package=mocks github.com/atinyakov/url-registry/internal/app/service URLServiceIface

// Storage is the gateway contract every backend implements.
type Storage interface {
	Create(context.Context, string) (storage.URLRecord, error)
	List(context.Context) ([]storage.URLRecord, error)
	Delete(context.Context, int64) (storage.URLRecord, error)
	PingContext(context.Context) error
}

// URLServiceIface is what the HTTP layer needs from the service.
type URLServiceIface interface {
	CreateURLRecord(ctx context.Context, long string) (*storage.URLRecord, error)
	ListURLRecords(ctx context.Context) ([]storage.URLRecord, error)
	DeleteURLRecord(ctx context.Context, id int64) (*storage.URLRecord, error)
	PingContext(ctx context.Context) error
}
