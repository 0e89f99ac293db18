package doctor

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

const validBody = `{"nombre":"Carlos","apellido":"Ramírez","telefono":"3105550000","email":"carlos.ramirez@clinica.com","id_especialidad":1}`

func TestHandlerCreate(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, rec := doJSON(e, http.MethodPost, "/doctor", validBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Doctor creado exitosamente" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if s, _ := body["id_doctor"].(string); s == "" {
		t.Error("expected id_doctor in the response envelope")
	}
}

func TestHandlerCreate_MissingSpecialty(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := doJSON(e, http.MethodPost, "/doctor",
		`{"nombre":"Carlos","apellido":"Ramírez"}`)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := doJSON(e, http.MethodGet, "/doctor/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if he.Message != "Doctor no encontrado" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestHandlerPatch(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, rec := doJSON(e, http.MethodPost, "/doctor", validBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var created map[string]any
	json.Unmarshal(rec.Body.Bytes(), &created)
	id := created["id_doctor"].(string)

	c, rec = doJSON(e, http.MethodPatch, "/doctor/"+id, `{"id_especialidad":3}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.Patch(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Doctor "+id+" actualizado parcialmente exitosamente" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
