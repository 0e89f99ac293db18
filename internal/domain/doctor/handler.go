package doctor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/doctor", h.Create)
	e.GET("/doctor", h.List)
	e.GET("/doctor/:id", h.Get)
	e.PUT("/doctor/:id", h.Update)
	e.PATCH("/doctor/:id", h.Patch)
	e.DELETE("/doctor/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &d)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Doctor creado exitosamente",
		"id_doctor": id,
		"data":      d,
	})
}

func (h *Handler) List(c echo.Context) error {
	docs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Lista de doctores",
		"data":    docs,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id := c.Param("id")
	doc, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor no encontrado")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Doctor " + id,
		"data":    doc,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Update(c.Request().Context(), id, &d)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Doctor " + id + " actualizado exitosamente",
		"data":    d,
	})
}

func (h *Handler) Patch(c echo.Context) error {
	id := c.Param("id")
	fields := store.Document{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Patch(c.Request().Context(), id, fields)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Doctor " + id + " actualizado parcialmente exitosamente",
		"data":    fields,
	})
}

func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	ok, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Doctor " + id + " eliminado exitosamente",
	})
}
