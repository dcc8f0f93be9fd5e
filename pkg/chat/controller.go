// pkg/chat/controller.go

package chat

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ada/entities"
	"ada/pkg/ai"
	convrepo "ada/pkg/conversation/repository"
)

type Ctrl struct {
	model ai.Client
	convs convrepo.ConversationRepository
}

func NewCtrl(model ai.Client, convs convrepo.ConversationRepository) *Ctrl {
	return &Ctrl{model: model, convs: convs}
}

// Stream sends the model's incremental reply as server-sent events. Closing
// the connection cancels the generation.
func (h *Ctrl) Stream(c echo.Context) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text required"})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	err := h.model.StreamChat(c.Request().Context(), body.Text, func(delta string) error {
		if _, err := resp.Write([]byte("data: " + delta + "\n\n")); err != nil {
			return err
		}
		resp.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, ai.ErrModelUnavailable) {
		// headers already sent; just end the stream
		return nil
	}
	if errors.Is(err, ai.ErrModelUnavailable) {
		resp.Write([]byte("data: the model is not available right now\n\n"))
		resp.Flush()
	}
	resp.Write([]byte("data: [DONE]\n\n"))
	resp.Flush()
	return nil
}

func (h *Ctrl) CreateConversation(c echo.Context) error {
	uid := c.Get("uid").(string)
	conv := &entities.Conversation{
		ID:        uuid.NewString(),
		UserID:    uid,
		Title:     "New Conversation",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.convs.Create(conv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, conv)
}

// DeleteConversation removes the thread and all of its messages.
func (h *Ctrl) DeleteConversation(c echo.Context) error {
	uid := c.Get("uid").(string)
	conv, err := h.convs.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "conversation not found"})
	}
	if err := h.convs.Delete(conv.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Ctrl) Messages(c echo.Context) error {
	uid := c.Get("uid").(string)
	conv, err := h.convs.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "conversation not found"})
	}
	msgs, err := h.convs.Messages(conv.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}
