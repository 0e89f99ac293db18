package specialty

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
	e.POST("/especialidad", h.Create)
	e.GET("/especialidad", h.List)
	e.GET("/especialidad/:id", h.Get)
	e.PUT("/especialidad/:id", h.Update)
	e.PATCH("/especialidad/:id", h.Patch)
	e.DELETE("/especialidad/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var sp Specialty
	if err := c.Bind(&sp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &sp)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":         "Especialidad creada exitosamente",
		"id_especialidad": id,
		"data":            sp,
	})
}

func (h *Handler) List(c echo.Context) error {
	docs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Lista de especialidades",
		"data":    docs,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id := c.Param("id")
	doc, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Especialidad no encontrada")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Especialidad " + id,
		"data":    doc,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	var sp Specialty
	if err := c.Bind(&sp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Update(c.Request().Context(), id, &sp)
	if errors.Is(err, store.ErrPersistence) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Especialidad " + id + " actualizada exitosamente",
		"data":    sp,
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
		return echo.NewHTTPError(http.StatusNotFound, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Especialidad " + id + " actualizada parcialmente exitosamente",
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
		return echo.NewHTTPError(http.StatusNotFound, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Especialidad " + id + " eliminada exitosamente",
	})
}
