package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ada/entities"
	"ada/pkg/ai"
	"ada/pkg/plan/service"
	"ada/pkg/plan/serviceImp"
)

type stubPlanService struct {
	processErr error
	result     *service.ProcessResult
}

func (s *stubPlanService) Process(ctx context.Context, userID, conversationID, text string) (*service.ProcessResult, error) {
	if s.processErr != nil {
		return nil, s.processErr
	}
	return s.result, nil
}

func (s *stubPlanService) Approve(userID, planID string) ([]entities.Receipt, error) {
	return []entities.Receipt{{ID: "r1", PlanID: planID, Success: true}}, nil
}

func (s *stubPlanService) Dismiss(userID, planID string) error { return nil }

func (s *stubPlanService) Inbox(userID string) (*service.InboxView, error) {
	return &service.InboxView{Plans: []entities.Plan{}, Items: []entities.Item{}}, nil
}

func (s *stubPlanService) List(userID string) ([]entities.Plan, error) {
	return []entities.Plan{}, nil
}

func (s *stubPlanService) Get(userID, planID string) (*entities.Plan, []entities.Receipt, error) {
	return &entities.Plan{ID: planID}, nil, nil
}

func (s *stubPlanService) Delete(userID, planID string) error { return nil }

func capture(t *testing.T, svc service.PlanService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/capture", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	require.NoError(t, NewPlanCtrl(svc).Capture(c))
	return rec
}

func TestCaptureCreated(t *testing.T) {
	svc := &stubPlanService{result: &service.ProcessResult{
		ConversationID: "c1",
		Plan:           &entities.Plan{ID: "p1", Status: entities.PlanCompleted},
		Reply:          "done",
	}}
	rec := capture(t, svc, `{"text":"dentist tomorrow"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var out service.ProcessResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "c1", out.ConversationID)
	assert.Equal(t, "p1", out.Plan.ID)
}

func TestCaptureRequiresText(t *testing.T) {
	rec := capture(t, &stubPlanService{}, `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureBusyIsConflict(t *testing.T) {
	rec := capture(t, &stubPlanService{processErr: serviceImp.ErrBusy}, `{"text":"dentist"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCaptureModelUnavailableIs503(t *testing.T) {
	rec := capture(t, &stubPlanService{processErr: ai.ErrModelUnavailable}, `{"text":"dentist"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCaptureGenerationFailureIs502(t *testing.T) {
	rec := capture(t, &stubPlanService{processErr: ai.ErrGeneration}, `{"text":"dentist"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
