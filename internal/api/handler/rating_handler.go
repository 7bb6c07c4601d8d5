package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

type RatingHandler struct {
	ratingService ports.RatingService
}

func NewRatingHandler(ratingService ports.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type ratingRequest struct {
	Value int `json:"rating_value" validate:"required,gte=1,lte=5"`
}

type ratingResponse struct {
	Message string         `json:"message,omitempty"`
	Rating  *domain.Rating `json:"rating"`
}

// Create submits a new rating for a store.
//
// @Summary      Submit a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        storeId  path      int            true  "Store ID"
// @Param        body     body      ratingRequest  true  "Rating value"
// @Success      201      {object}  ratingResponse
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /ratings/{storeId} [post]
func (h *RatingHandler) Create(c echo.Context) error {
	userID, storeID, value, err := h.ratingArgs(c, true)
	if err != nil {
		return err
	}

	rating, err := h.ratingService.Create(c.Request().Context(), userID, storeID, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ratingResponse{Message: "rating submitted successfully", Rating: rating})
}

// Update rewrites an existing rating for a store.
//
// @Summary      Update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        storeId  path      int            true  "Store ID"
// @Param        body     body      ratingRequest  true  "New rating value"
// @Success      200      {object}  ratingResponse
// @Failure      404      {object}  map[string]string
// @Router       /ratings/{storeId} [put]
func (h *RatingHandler) Update(c echo.Context) error {
	userID, storeID, value, err := h.ratingArgs(c, true)
	if err != nil {
		return err
	}

	rating, err := h.ratingService.Update(c.Request().Context(), userID, storeID, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingResponse{Message: "rating updated successfully", Rating: rating})
}

// Get returns the authenticated user's rating for a store.
//
// @Summary      Get own rating
// @Tags         ratings
// @Produce      json
// @Param        storeId  path      int  true  "Store ID"
// @Success      200      {object}  ratingResponse
// @Failure      404      {object}  map[string]string
// @Router       /ratings/{storeId} [get]
func (h *RatingHandler) Get(c echo.Context) error {
	userID, storeID, _, err := h.ratingArgs(c, false)
	if err != nil {
		return err
	}

	rating, err := h.ratingService.Get(c.Request().Context(), userID, storeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingResponse{Rating: rating})
}

// Delete removes the authenticated user's rating for a store.
//
// @Summary      Delete own rating
// @Tags         ratings
// @Produce      json
// @Param        storeId  path      int  true  "Store ID"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /ratings/{storeId} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	userID, storeID, _, err := h.ratingArgs(c, false)
	if err != nil {
		return err
	}

	if err := h.ratingService.Delete(c.Request().Context(), userID, storeID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "rating deleted successfully"})
}

// ratingArgs extracts the caller identity, the store path parameter and,
// when withBody is set, the validated rating value.
func (h *RatingHandler) ratingArgs(c echo.Context, withBody bool) (userID, storeID int64, value int, err error) {
	userID, _, err = ctxIdentity(c)
	if err != nil {
		return 0, 0, 0, err
	}

	storeID, err = pathID(c, "storeId")
	if err != nil {
		return 0, 0, 0, err
	}

	if withBody {
		var req ratingRequest
		if err := c.Bind(&req); err != nil {
			return 0, 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return 0, 0, 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		value = req.Value
	}
	return userID, storeID, value, nil
}
