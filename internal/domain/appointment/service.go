package appointment

import (
	"context"

	"github.com/clinica/clinica/internal/platform/dates"
	"github.com/clinica/clinica/internal/store"
)

// Service orchestrates appointment operations: date-time normalization,
// then field validation, then the persistence gateway.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(ctx context.Context, a *Appointment) (string, error) {
	canonical, err := dates.NormalizeString(a.FechaHora)
	if err != nil {
		return "", err
	}
	a.FechaHora = canonical
	if err := a.Validate(); err != nil {
		return "", err
	}
	return s.store.Insert(ctx, store.ColAppointment, a.Document())
}

func (s *Service) List(ctx context.Context) ([]store.Document, error) {
	return s.store.FindAll(ctx, store.ColAppointment, nil)
}

func (s *Service) Get(ctx context.Context, id string) (store.Document, error) {
	return s.store.FindByID(ctx, store.ColAppointment, id)
}

func (s *Service) Update(ctx context.Context, id string, a *Appointment) (bool, error) {
	canonical, err := dates.NormalizeString(a.FechaHora)
	if err != nil {
		return false, err
	}
	a.FechaHora = canonical
	if err := a.Validate(); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColAppointment, id, a.Document())
}

func (s *Service) Patch(ctx context.Context, id string, fields store.Document) (bool, error) {
	if v, ok := fields["fecha_hora"]; ok {
		canonical, err := dates.NormalizeString(v)
		if err != nil {
			return false, err
		}
		fields["fecha_hora"] = canonical
	}
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.store.Update(ctx, store.ColAppointment, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, store.ColAppointment, id)
}
