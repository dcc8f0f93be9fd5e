// pkg/brief/controller.go

package brief

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ada/pkg/ai"
)

type Ctrl struct{ svc *Service }

func NewCtrl(svc *Service) *Ctrl { return &Ctrl{svc: svc} }

func (h *Ctrl) Today(c echo.Context) error {
	out, err := h.svc.Today(c.Request().Context())
	switch {
	case errors.Is(err, ai.ErrModelUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "the model is not available right now"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
