package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

type StoreHandler struct {
	storeService ports.StoreService
}

func NewStoreHandler(storeService ports.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

type createStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address,omitempty" validate:"max=400"`
	OwnerID *int64 `json:"owner_id,omitempty" validate:"omitempty,gte=1"`
}

type storeListResponse struct {
	Stores     []domain.StoreWithRating `json:"stores"`
	Pagination pagination               `json:"pagination"`
}

// Create registers a store, optionally assigned to a Store Owner.
//
// @Summary      Create a store (admin)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.CreateStore(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, store)
}

// List pages stores with filters, sort and per-store rating aggregates.
// Normal Users additionally see their own rating on each store.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Success      200  {object}  storeListResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filters := ports.StoreListFilters{
		Name:      c.QueryParam("name"),
		Address:   c.QueryParam("address"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
		UserID:    userID,
	}

	result, err := h.storeService.ListStores(c.Request().Context(), filters, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, storeListResponse{
		Stores:     result.Items,
		Pagination: newPagination(result.Page, result.TotalPages, result.Total),
	})
}

// Get returns one store with its aggregate and, for Normal Users, their own
// rating of it.
//
// @Summary      Get a store
// @Tags         stores
// @Produce      json
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.StoreWithRating
// @Failure      404  {object}  map[string]string
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.storeService.GetStore(c.Request().Context(), id, userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}
