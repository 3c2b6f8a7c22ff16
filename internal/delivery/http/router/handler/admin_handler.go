package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"panel/internal/delivery/http/response"
	"panel/internal/usecase"
)

// DictionaryHandler exposes CRUD over frontend lookup dictionaries.
type DictionaryHandler struct {
	uc usecase.DictionaryUsecase
}

// NewDictionaryHandler is the constructor for DictionaryHandler, injected by Fx.
func NewDictionaryHandler(uc usecase.DictionaryUsecase) *DictionaryHandler {
	return &DictionaryHandler{uc: uc}
}

type dictionaryRequest struct {
	Key    string `json:"key" validate:"required"`
	Label  string `json:"label" validate:"required"`
	Value  string `json:"value"`
	Remark string `json:"remark"`
}

func (r dictionaryRequest) toInput() usecase.DictionaryInput {
	return usecase.DictionaryInput{
		Key:    r.Key,
		Label:  r.Label,
		Value:  r.Value,
		Remark: r.Remark,
	}
}

// Create handles dictionary creation.
func (h *DictionaryHandler) Create(c echo.Context) error {
	var req dictionaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dictionary, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dictionary, "Dictionary created")
}

// Get handles reading one dictionary entry.
func (h *DictionaryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	dictionary, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dictionary, "")
}

// List handles listing all dictionary entries.
func (h *DictionaryHandler) List(c echo.Context) error {
	dictionaries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dictionaries, "")
}

// Update handles rewriting a dictionary entry.
func (h *DictionaryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req dictionaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dictionary, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dictionary, "Dictionary updated")
}

// Delete handles removing a dictionary entry.
func (h *DictionaryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dictionary deleted")
}

// ResourceHandler exposes CRUD over the API resource registry.
type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

// NewResourceHandler is the constructor for ResourceHandler, injected by Fx.
func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

type resourceRequest struct {
	Name   string `json:"name" validate:"required"`
	Path   string `json:"path" validate:"required"`
	Method string `json:"method" validate:"required,oneof=GET POST PUT PATCH DELETE"`
	Remark string `json:"remark"`
}

func (r resourceRequest) toInput() usecase.ResourceInput {
	return usecase.ResourceInput{
		Name:   r.Name,
		Path:   r.Path,
		Method: r.Method,
		Remark: r.Remark,
	}
}

// Create handles resource registration.
func (h *ResourceHandler) Create(c echo.Context) error {
	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resource input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	resource, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, resource, "Resource created")
}

// Get handles reading one resource entry.
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	resource, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource, "")
}

// List handles listing the resource registry.
func (h *ResourceHandler) List(c echo.Context) error {
	resources, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resources, "")
}

// Update handles rewriting a resource entry.
func (h *ResourceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resource input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	resource, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resource, "Resource updated")
}

// Delete handles removing a resource entry.
func (h *ResourceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Resource deleted")
}

// MenuHandler exposes CRUD over the dashboard navigation tree.
type MenuHandler struct {
	uc usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

type menuRequest struct {
	Name     string     `json:"name" validate:"required"`
	Path     string     `json:"path" validate:"required"`
	Icon     string     `json:"icon"`
	ParentID *uuid.UUID `json:"parent_id"`
	Sort     int        `json:"sort"`
	Hidden   bool       `json:"hidden"`
}

func (r menuRequest) toInput() usecase.MenuInput {
	return usecase.MenuInput{
		Name:     r.Name,
		Path:     r.Path,
		Icon:     r.Icon,
		ParentID: r.ParentID,
		Sort:     r.Sort,
		Hidden:   r.Hidden,
	}
}

// Create handles menu creation.
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, menu, "Menu created")
}

// Get handles reading one menu entry.
func (h *MenuHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// List handles listing the navigation tree.
func (h *MenuHandler) List(c echo.Context) error {
	menus, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menus, "")
}

// Update handles rewriting a menu entry.
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	menu, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu updated")
}

// Delete handles removing a menu entry.
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu deleted")
}

// OperationLogHandler exposes the read side of the operation log.
type OperationLogHandler struct {
	uc usecase.OperationLogUsecase
}

// NewOperationLogHandler is the constructor for OperationLogHandler, injected by Fx.
func NewOperationLogHandler(uc usecase.OperationLogUsecase) *OperationLogHandler {
	return &OperationLogHandler{uc: uc}
}

// List handles paging through recorded operations, newest first.
func (h *OperationLogHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	logs, err := h.uc.List(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}
