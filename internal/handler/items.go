package handler

import (
	"time"

	"itemsapi/internal/errs"
	"itemsapi/internal/repository"
	"itemsapi/internal/server"
	"itemsapi/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance for request payloads.
// validator.Validate is safe for concurrent use and caches struct info.
var validate = validator.New()

// ItemsHandler exposes the item CRUD endpoints.
type ItemsHandler struct {
	Handler
	items *service.ItemService
}

func NewItemsHandler(s *server.Server, items *service.ItemService) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// ItemResponse is the wire representation of an item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResponse(item *repository.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ListItemsRequest carries the query params of GET /items. Limit and
// offset are pointers so an omitted param (default applies) is
// distinguishable from an explicit out-of-range zero (rejected).
type ListItemsRequest struct {
	Limit  *int   `query:"limit" validate:"omitnil,gte=1,lte=200"`
	Offset *int   `query:"offset" validate:"omitnil,gte=0"`
	Query  string `query:"q"`
}

func (r *ListItemsRequest) Validate() error {
	return validate.Struct(r)
}

// GetItemRequest carries the path param of GET /items/:id.
type GetItemRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetItemRequest) Validate() error {
	return validate.Struct(r)
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

func (r *CreateItemRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateItemRequest is the body of PATCH /items/:id. Both fields are
// optional; nil means "leave untouched". Supplying neither is a 400,
// handled in Update.
type UpdateItemRequest struct {
	ID          string  `param:"id" json:"-" validate:"required"`
	Name        *string `json:"name" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description" validate:"omitnil,min=1,max=1000"`
}

func (r *UpdateItemRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteItemRequest carries the path param of DELETE /items/:id.
type DeleteItemRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *DeleteItemRequest) Validate() error {
	return validate.Struct(r)
}

// List returns items newest first, honoring limit/offset and the
// optional case-insensitive substring filter q.
func (h *ItemsHandler) List(c echo.Context, req *ListItemsRequest) ([]ItemResponse, error) {
	limit := repository.ListDefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	offset := 0
	if req.Offset != nil {
		offset = *req.Offset
	}

	items, err := h.items.List(c.Request().Context(), limit, offset, req.Query)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, newItemResponse(&items[i]))
	}
	return responses, nil
}

// Get returns a single item, or 404 when the id is unknown.
func (h *ItemsHandler) Get(c echo.Context, req *GetItemRequest) (ItemResponse, error) {
	item, err := h.items.Get(c.Request().Context(), req.ID)
	if err != nil {
		return ItemResponse{}, err
	}
	if item == nil {
		return ItemResponse{}, errs.NewNotFoundError("Item not found", nil)
	}
	return newItemResponse(item), nil
}

// Create persists a new item and returns its representation (201).
func (h *ItemsHandler) Create(c echo.Context, req *CreateItemRequest) (ItemResponse, error) {
	item, err := h.items.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return ItemResponse{}, err
	}
	return newItemResponse(item), nil
}

// Update applies a partial update. A payload with no fields set is
// rejected with 400; an unknown id is a 404.
func (h *ItemsHandler) Update(c echo.Context, req *UpdateItemRequest) (ItemResponse, error) {
	if req.Name == nil && req.Description == nil {
		return ItemResponse{}, errs.NewBadRequestError("No fields to update", nil, nil)
	}

	item, err := h.items.Update(c.Request().Context(), req.ID, req.Name, req.Description)
	if err != nil {
		return ItemResponse{}, err
	}
	if item == nil {
		return ItemResponse{}, errs.NewNotFoundError("Item not found", nil)
	}
	return newItemResponse(item), nil
}

// Delete removes an item (204), or 404 when the id is unknown —
// including a repeated delete of the same id.
func (h *ItemsHandler) Delete(c echo.Context, req *DeleteItemRequest) error {
	ok, err := h.items.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewNotFoundError("Item not found", nil)
	}
	return nil
}
