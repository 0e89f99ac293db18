package patient

import (
	"context"

	"github.com/clinica/clinica/internal/platform/dates"
	"github.com/clinica/clinica/internal/store"
)

// Service orchestrates patient operations: date normalization, then field
// validation, then the persistence gateway.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(ctx context.Context, p *Patient) (string, error) {
	canonical, err := dates.NormalizeString(p.FechaNacimiento)
	if err != nil {
		return "", err
	}
	p.FechaNacimiento = canonical
	if err := p.Validate(); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.ColPatient, p.Document())
}

func (s *Service) List(ctx context.Context) ([]store.Document, error) {
	return s.store.FindAll(ctx, store.ColPatient, nil)
}

func (s *Service) Get(ctx context.Context, id string) (store.Document, error) {
	return s.store.FindByID(ctx, store.ColPatient, id)
}

func (s *Service) Update(ctx context.Context, id string, p *Patient) (bool, error) {
	canonical, err := dates.NormalizeString(p.FechaNacimiento)
	if err != nil {
		return false, err
	}
	p.FechaNacimiento = canonical
	if err := p.Validate(); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColPatient, id, p.Document())
}

func (s *Service) Patch(ctx context.Context, id string, fields store.Document) (bool, error) {
	if v, ok := fields["fecha_nacimiento"]; ok {
		canonical, err := dates.NormalizeString(v)
		if err != nil {
			return false, err
		}
		fields["fecha_nacimiento"] = canonical
	}
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColPatient, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, store.ColPatient, id)
}
