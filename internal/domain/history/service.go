package history

import (
	"context"

	"github.com/clinica/clinica/internal/platform/dates"
	"github.com/clinica/clinica/internal/store"
)

// Service orchestrates history operations: date normalization, then
// field validation, then the persistence gateway.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(ctx context.Context, h *History) (string, error) {
	canonical, err := dates.NormalizeString(h.Fecha)
	if err != nil {
		return "", err
	}
	h.Fecha = canonical
	if err := h.Validate(); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.ColHistory, h.Document())
}

func (s *Service) List(ctx context.Context) ([]store.Document, error) {
	return s.store.FindAll(ctx, store.ColHistory, nil)
}

func (s *Service) Get(ctx context.Context, id string) (store.Document, error) {
	return s.store.FindByID(ctx, store.ColHistory, id)
}

func (s *Service) Update(ctx context.Context, id string, h *History) (bool, error) {
	canonical, err := dates.NormalizeString(h.Fecha)
	if err != nil {
		return false, err
	}
	h.Fecha = canonical
	if err := h.Validate(); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColHistory, id, h.Document())
}

func (s *Service) Patch(ctx context.Context, id string, fields store.Document) (bool, error) {
	if v, ok := fields["fecha"]; ok {
		canonical, err := dates.NormalizeString(v)
		if err != nil {
			return false, err
		}
		fields["fecha"] = canonical
	}
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColHistory, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, store.ColHistory, id)
}
