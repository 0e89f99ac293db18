package doctor

import (
	"context"

	"github.com/clinica/clinica/internal/store"
)

// Service runs doctor operations against the persistence gateway.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(ctx context.Context, d *Doctor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.ColDoctor, d.Document())
}

func (s *Service) List(ctx context.Context) ([]store.Document, error) {
	return s.store.FindAll(ctx, store.ColDoctor, nil)
}

func (s *Service) Get(ctx context.Context, id string) (store.Document, error) {
	return s.store.FindByID(ctx, store.ColDoctor, id)
}

func (s *Service) Update(ctx context.Context, id string, d *Doctor) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColDoctor, id, d.Document())
}

func (s *Service) Patch(ctx context.Context, id string, fields store.Document) (bool, error) {
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColDoctor, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, store.ColDoctor, id)
}
