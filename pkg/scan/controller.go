// pkg/scan/controller.go

package scan

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ada/pkg/ai"
)

type Ctrl struct{ svc *Service }

func NewCtrl(svc *Service) *Ctrl { return &Ctrl{svc: svc} }

func (h *Ctrl) Extract(c echo.Context) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text required"})
	}

	content, err := h.svc.ExtractText(c.Request().Context(), body.Text)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(http.StatusOK, content)
}

func (h *Ctrl) ExtractURL(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}

	content, err := h.svc.IngestURL(c.Request().Context(), body.URL)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(http.StatusOK, content)
}

func scanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ai.ErrModelUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "the model is not available right now"})
	case errors.Is(err, ai.ErrGeneration):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "could not extract content"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
