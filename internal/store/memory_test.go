package store

import (
	"context"
	"errors"
	"testing"
)

func TestInsertThenFindByID(t *testing.T) {
	s := NewMemory()
	id, err := s.Insert(context.Background(), ColPatient, Document{"nombre": "Juan", "apellido": "Pérez"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := s.FindByID(context.Background(), ColPatient, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["nombre"] != "Juan" || doc["apellido"] != "Pérez" {
		t.Errorf("unexpected document: %v", doc)
	}
	if doc["id"] != id {
		t.Errorf("expected printable id %q, got %v", id, doc["id"])
	}
	if doc["created_at"] == nil {
		t.Error("expected creation timestamp")
	}
	if doc["updated_at"] != nil {
		t.Error("did not expect update timestamp on a fresh document")
	}
}

func TestFindByID_Absent(t *testing.T) {
	s := NewMemory()
	if _, err := s.FindByID(context.Background(), ColPatient, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsert_ReservedKeysStripped(t *testing.T) {
	s := NewMemory()
	id, _ := s.Insert(context.Background(), ColPatient, Document{"id": "spoofed", "nombre": "Ana"})
	doc, err := s.FindByID(context.Background(), ColPatient, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["id"] != id {
		t.Errorf("expected gateway-assigned id, got %v", doc["id"])
	}
}

func TestFindAll_FilterAndOrder(t *testing.T) {
	s := NewMemory()
	s.Insert(context.Background(), ColAppointment, Document{"id_paciente": 1, "motivo": "control"})
	s.Insert(context.Background(), ColAppointment, Document{"id_paciente": 2, "motivo": "urgencia"})
	s.Insert(context.Background(), ColAppointment, Document{"id_paciente": 1, "motivo": "revisión"})

	all, err := s.FindAll(context.Background(), ColAppointment, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
	if all[0]["motivo"] != "control" {
		t.Error("expected insertion order to be preserved")
	}

	filtered, err := s.FindAll(context.Background(), ColAppointment, Document{"id_paciente": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 matching documents, got %d", len(filtered))
	}
}

func TestFindAll_EmptyCollection(t *testing.T) {
	s := NewMemory()
	docs, err := s.FindAll(context.Background(), ColDoctor, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected empty result, got %d", len(docs))
	}
}

func TestUpdate_MergesOnlyNamedFields(t *testing.T) {
	s := NewMemory()
	id, _ := s.Insert(context.Background(), ColPatient, Document{
		"nombre": "Juan", "telefono": "3001111111", "email": "juan@email.com",
	})
	ok, err := s.Update(context.Background(), ColPatient, id, Document{"telefono": "3009999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected update to report a modification")
	}
	doc, _ := s.FindByID(context.Background(), ColPatient, id)
	if doc["telefono"] != "3009999999" {
		t.Errorf("expected merged phone, got %v", doc["telefono"])
	}
	if doc["nombre"] != "Juan" || doc["email"] != "juan@email.com" {
		t.Error("untouched fields must remain unchanged")
	}
	if doc["updated_at"] == nil {
		t.Error("expected update timestamp after modification")
	}
}

func TestUpdate_UnchangedFields(t *testing.T) {
	s := NewMemory()
	id, _ := s.Insert(context.Background(), ColPatient, Document{"nombre": "Juan"})
	ok, err := s.Update(context.Background(), ColPatient, id, Document{"nombre": "Juan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected false when the merge changes nothing")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewMemory()
	ok, err := s.Update(context.Background(), ColPatient, "missing", Document{"nombre": "X"})
	if err != nil || ok {
		t.Errorf("expected false/nil for unknown id, got %v/%v", ok, err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	s := NewMemory()
	id, _ := s.Insert(context.Background(), ColSpecialty, Document{"nombre": "Cardiología"})

	ok, err := s.Delete(context.Background(), ColSpecialty, id)
	if err != nil || !ok {
		t.Fatalf("expected successful delete, got %v/%v", ok, err)
	}
	ok, err = s.Delete(context.Background(), ColSpecialty, id)
	if err != nil || ok {
		t.Errorf("expected false for a second delete, got %v/%v", ok, err)
	}
	ok, err = s.Delete(context.Background(), ColSpecialty, "never-existed")
	if err != nil || ok {
		t.Errorf("expected false for unknown id, got %v/%v", ok, err)
	}
}
