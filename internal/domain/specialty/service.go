package specialty

import (
	"context"

	"github.com/clinica/clinica/internal/store"
)

// Service runs specialty operations against the persistence gateway.
// Specialties carry no date fields, so there is no normalization step.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(ctx context.Context, sp *Specialty) (string, error) {
	if err := sp.Validate(); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.ColSpecialty, sp.Document())
}

func (s *Service) List(ctx context.Context) ([]store.Document, error) {
	return s.store.FindAll(ctx, store.ColSpecialty, nil)
}

func (s *Service) Get(ctx context.Context, id string) (store.Document, error) {
	return s.store.FindByID(ctx, store.ColSpecialty, id)
}

func (s *Service) Update(ctx context.Context, id string, sp *Specialty) (bool, error) {
	if err := sp.Validate(); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColSpecialty, id, sp.Document())
}

func (s *Service) Patch(ctx context.Context, id string, fields store.Document) (bool, error) {
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColSpecialty, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, store.ColSpecialty, id)
}
