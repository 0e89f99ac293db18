package history

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
	e.POST("/historial", h.Create)
	e.GET("/historial", h.List)
	e.GET("/historial/:id", h.Get)
	e.PUT("/historial/:id", h.Update)
	e.PATCH("/historial/:id", h.Patch)
	e.DELETE("/historial/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var hist History
	if err := c.Bind(&hist); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &hist)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Historial creado exitosamente",
		"id_historial": id,
		"data":         hist,
	})
}

func (h *Handler) List(c echo.Context) error {
	docs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Lista de historiales",
		"data":    docs,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id := c.Param("id")
	doc, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Historial no encontrado")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Historial " + id,
		"data":    doc,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	var hist History
	if err := c.Bind(&hist); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Update(c.Request().Context(), id, &hist)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Historial no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Historial " + id + " actualizado exitosamente",
		"data":    hist,
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
		return echo.NewHTTPError(http.StatusNotFound, "Historial no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Historial " + id + " actualizado parcialmente exitosamente",
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
		return echo.NewHTTPError(http.StatusNotFound, "Historial no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Historial " + id + " eliminado exitosamente",
	})
}
