package appointment

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
	e.POST("/cita", h.Create)
	e.GET("/cita", h.List)
	e.GET("/cita/:id", h.Get)
	e.PUT("/cita/:id", h.Update)
	e.PATCH("/cita/:id", h.Patch)
	e.DELETE("/cita/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &a)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Cita creada exitosamente",
		"id_cita": id,
		"data":    a,
	})
}

func (h *Handler) List(c echo.Context) error {
	docs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Lista de citas",
		"data":    docs,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id := c.Param("id")
	doc, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Cita no encontrada")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cita " + id,
		"data":    doc,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Update(c.Request().Context(), id, &a)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cita " + id + " actualizada exitosamente",
		"data":    a,
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
		return echo.NewHTTPError(http.StatusNotFound, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cita " + id + " actualizada parcialmente exitosamente",
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
		return echo.NewHTTPError(http.StatusNotFound, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cita " + id + " eliminada exitosamente",
	})
}
