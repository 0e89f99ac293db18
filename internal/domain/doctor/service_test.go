package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

func strPtr(s string) *string { return &s }

func validDoctor() *Doctor {
	return &Doctor{
		Nombre:         "Carlos",
		Apellido:       "Ramírez",
		Telefono:       strPtr("3105550000"),
		Email:          strPtr("carlos.ramirez@clinica.com"),
		IDEspecialidad: 1,
	}
}

func newTestService() *Service {
	return NewService(store.NewMemory())
}

func TestCreate_ThenGetRoundTrip(t *testing.T) {
	svc := newTestService()
	id, err := svc.Create(context.Background(), validDoctor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["nombre"] != "Carlos" || doc["apellido"] != "Ramírez" {
		t.Errorf("unexpected names: %v", doc)
	}
	if doc["id_especialidad"] != 1 {
		t.Errorf("unexpected id_especialidad: %v", doc["id_especialidad"])
	}
}

func TestCreate_DanglingSpecialtyAccepted(t *testing.T) {
	// References are checked for shape only; no existence lookup happens.
	svc := newTestService()
	d := validDoctor()
	d.IDEspecialidad = 9999
	if _, err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("dangling specialty reference must be accepted: %v", err)
	}
}

func TestCreate_InvalidSpecialtyRef(t *testing.T) {
	svc := newTestService()
	for _, ref := range []int{0, -3} {
		d := validDoctor()
		d.IDEspecialidad = ref
		_, err := svc.Create(context.Background(), d)
		var ve *validate.Error
		if !errors.As(err, &ve) || ve.Field != "id_especialidad" {
			t.Errorf("ref %d: expected validation error on id_especialidad, got %v", ref, err)
		}
	}
}

func TestCreate_OptionalContactAbsent(t *testing.T) {
	svc := newTestService()
	d := &Doctor{Nombre: "Lucía", Apellido: "Torres", IDEspecialidad: 2}
	id, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, _ := svc.Get(context.Background(), id)
	if doc["telefono"] != nil {
		t.Errorf("absent telefono must be stored as null, got %v", doc["telefono"])
	}
	if doc["email"] != nil {
		t.Errorf("absent email must be stored as null, got %v", doc["email"])
	}
}

func TestPatch_SpecialtyReassignment(t *testing.T) {
	svc := newTestService()
	id, _ := svc.Create(context.Background(), validDoctor())

	ok, err := svc.Patch(context.Background(), id, store.Document{"id_especialidad": float64(3)})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v/%v", ok, err)
	}
	doc, _ := svc.Get(context.Background(), id)
	if doc["id_especialidad"] != 3 {
		t.Errorf("expected reassigned specialty, got %v", doc["id_especialidad"])
	}

	if _, err := svc.Patch(context.Background(), id, store.Document{"id_especialidad": 0}); err == nil {
		t.Error("expected zero specialty reference to be rejected")
	}
}

func TestPatch_NullClearsEmail(t *testing.T) {
	svc := newTestService()
	id, _ := svc.Create(context.Background(), validDoctor())

	ok, err := svc.Patch(context.Background(), id, store.Document{"email": nil})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v/%v", ok, err)
	}
	doc, _ := svc.Get(context.Background(), id)
	if doc["email"] != nil {
		t.Errorf("null email must clear the stored value, got %v", doc["email"])
	}
	if doc["telefono"] != "3105550000" {
		t.Error("telefono must be untouched by the partial update")
	}

	if _, err := svc.Patch(context.Background(), id, store.Document{"nombre": nil}); err == nil {
		t.Error("null nombre must be rejected, names are required")
	}
}

func TestPatch_UnknownField(t *testing.T) {
	svc := newTestService()
	id, _ := svc.Create(context.Background(), validDoctor())
	if _, err := svc.Patch(context.Background(), id, store.Document{"turno": "noche"}); err == nil {
		t.Error("expected unknown field to be rejected")
	}
}

func TestDelete_Observable(t *testing.T) {
	svc := newTestService()
	id, _ := svc.Create(context.Background(), validDoctor())

	ok, err := svc.Delete(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("expected successful delete, got %v/%v", ok, err)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, store.ErrNotFound) {
		t.Error("expected not-found after delete")
	}
}
