package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin returns the platform-wide dashboard.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.AdminDashboard
// @Router       /dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	dashboard, err := h.dashboardService.Admin(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// Owner returns the store owner's dashboard for their single store.
//
// @Summary      Store owner dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.OwnerDashboard
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/owner [get]
func (h *DashboardHandler) Owner(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.Owner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
