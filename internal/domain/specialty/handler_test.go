package specialty

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() *Handler {
	return NewHandler(newTestService())
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, rec := doJSON(e, http.MethodPost, "/especialidad",
		`{"nombre":"Cardiología","descripcion":"Enfermedades del corazón"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Especialidad creada exitosamente" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if s, _ := body["id_especialidad"].(string); s == "" {
		t.Error("expected id_especialidad in the response envelope")
	}
}

func TestHandlerCreate_Invalid(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := doJSON(e, http.MethodPost, "/especialidad", `{"nombre":"CG"}`)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := doJSON(e, http.MethodGet, "/especialidad/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if he.Message != "Especialidad no encontrada" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestHandlerUpdateAndDelete(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, rec := doJSON(e, http.MethodPost, "/especialidad", `{"nombre":"Pediatría"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var created map[string]any
	json.Unmarshal(rec.Body.Bytes(), &created)
	id := created["id_especialidad"].(string)

	c, rec = doJSON(e, http.MethodPut, "/especialidad/"+id,
		`{"nombre":"Pediatría General"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Especialidad "+id+" actualizada exitosamente" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	c, rec = doJSON(e, http.MethodDelete, "/especialidad/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Especialidad "+id+" eliminada exitosamente" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
