package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ada/pkg/ai"
	"ada/pkg/plan/service"
	"ada/pkg/plan/serviceImp"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func (h *PlanCtrl) Capture(c echo.Context) error {
	uid := c.Get("uid").(string)

	var body struct {
		Text           string `json:"text"`
		ConversationID string `json:"conversation_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text required"})
	}

	res, err := h.svc.Process(c.Request().Context(), uid, body.ConversationID, body.Text)
	switch {
	case errors.Is(err, serviceImp.ErrBusy):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, ai.ErrModelUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "the model is not available right now"})
	case errors.Is(err, ai.ErrGeneration):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "could not understand that input"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PlanCtrl) Inbox(c echo.Context) error {
	uid := c.Get("uid").(string)
	view, err := h.svc.Inbox(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view)
}

func (h *PlanCtrl) Approve(c echo.Context) error {
	uid := c.Get("uid").(string)
	receipts, err := h.svc.Approve(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"receipts": receipts})
}

func (h *PlanCtrl) Dismiss(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Dismiss(uid, c.Param("id")); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlanCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Delete(uid, c.Param("id")); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlanCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	plans, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *PlanCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	plan, receipts, err := h.svc.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"plan": plan, "receipts": receipts})
}
