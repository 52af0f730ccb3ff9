// Package service holds the operations exposed by the URL registry and
// sits between the HTTP handlers and the storage backend.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/storage"
)

type URLService struct {
	repository Storage
	logger     *zap.Logger
}

func NewURL(repo Storage, logger *zap.Logger) *URLService {
	return &URLService{
		repository: repo,
		logger:     logger,
	}
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// CreateURLRecord stores long under a new short code and returns the record.
func (s *URLService) CreateURLRecord(ctx context.Context, long string) (*storage.URLRecord, error) {
	r, err := s.repository.Create(ctx, long)
	if err != nil {
		s.logFailure("create url", err, zap.String("long_url", long))
		return nil, err
	}

	s.logger.Info("url created", zap.Int64("id", r.ID), zap.String("short_url", r.Short))

	return &r, nil
}

// ListURLRecords returns every stored record. The slice is never nil.
func (s *URLService) ListURLRecords(ctx context.Context) ([]storage.URLRecord, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		s.logFailure("list urls", err)
		return nil, err
	}

	if records == nil {
		records = make([]storage.URLRecord, 0)
	}

	return records, nil
}

// DeleteURLRecord removes the record with the given id and returns what it held.
func (s *URLService) DeleteURLRecord(ctx context.Context, id int64) (*storage.URLRecord, error) {
	r, err := s.repository.Delete(ctx, id)
	if err != nil {
		s.logFailure("delete url", err, zap.Int64("id", id))
		return nil, err
	}

	s.logger.Info("url deleted", zap.Int64("id", r.ID), zap.String("short_url", r.Short))

	return &r, nil
}

func (s *URLService) logFailure(op string, err error, fields ...zap.Field) {
	kind := KindOf(err)
	fields = append(fields, zap.String("error_kind", string(kind)), zap.Error(err))

	if kind == KindNotFound {
		s.logger.Warn(op+" failed", fields...)
		return
	}

	s.logger.Error(op+" failed", fields...)
}
