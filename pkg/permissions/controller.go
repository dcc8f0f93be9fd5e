// pkg/permissions/controller.go

package permissions

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Ctrl struct{ mgr *Manager }

func NewCtrl(mgr *Manager) *Ctrl { return &Ctrl{mgr: mgr} }

func (h *Ctrl) Grant(c echo.Context) error {
	cap := Capability(c.Param("capability"))
	if err := h.mgr.Grant(cap); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.mgr.Snapshot())
}

func (h *Ctrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.mgr.Snapshot())
}
