package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillconnect/config"
	"skillconnect/internal/domain/service"
	mockSvc "skillconnect/internal/mocks/service"
	"skillconnect/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type emailHandlerFixtures struct {
	handler *EmailHandler
	mailer  *mockSvc.MockMailer
}

func createTestEmailHandler(t *testing.T) emailHandlerFixtures {
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewEmailHandler(EmailHandlerParams{
		Config: &config.Config{},
		Logger: logger,
		Mailer: mailer,
	})

	return emailHandlerFixtures{handler: h, mailer: mailer}
}

func pushRequest(t *testing.T, event *service.ApplicationEvent) *http.Request {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg pubsub.PubSubPushMessage
	pushMsg.Subscription = "projects/test/subscriptions/application-events-sub"
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.ApplicationID

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func performPush(fx emailHandlerFixtures, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = fx.handler.HandlePush(c)

	return rec
}

func TestEmailHandler_ApplicationCreated_SendsEmployerEmail(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	fx.mailer.EXPECT().
		SendApplicationReceived(mock.Anything, "employer@duka.co.ke", "Wanjiru Kamau", "Boda Rider").
		Return(nil)

	rec := performPush(fx, pushRequest(t, &service.ApplicationEvent{
		Type:          service.EventApplicationCreated,
		ApplicationID: "11111111-1111-1111-1111-111111111111",
		JobID:         "22222222-2222-2222-2222-222222222222",
		JobTitle:      "Boda Rider",
		SeekerName:    "Wanjiru Kamau",
		EmployerEmail: "employer@duka.co.ke",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_StatusChanged_SendsSeekerEmail(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	fx.mailer.EXPECT().
		SendApplicationStatusChanged(mock.Anything, "seeker@example.com", "Boda Rider", "accepted").
		Return(nil)

	rec := performPush(fx, pushRequest(t, &service.ApplicationEvent{
		Type:          service.EventApplicationStatusChanged,
		ApplicationID: "11111111-1111-1111-1111-111111111111",
		JobTitle:      "Boda Rider",
		SeekerEmail:   "seeker@example.com",
		Status:        "accepted",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_SendFailureIsRetried(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	fx.mailer.EXPECT().
		SendApplicationReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("resend unavailable"))

	rec := performPush(fx, pushRequest(t, &service.ApplicationEvent{
		Type:          service.EventApplicationCreated,
		ApplicationID: "11111111-1111-1111-1111-111111111111",
		EmployerEmail: "employer@duka.co.ke",
	}))

	// 503 asks Pub/Sub to redeliver the message
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEmailHandler_UnknownEventTypeIsAcked(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	rec := performPush(fx, pushRequest(t, &service.ApplicationEvent{
		Type:          "application.archived",
		ApplicationID: "11111111-1111-1111-1111-111111111111",
	}))

	// Unknown types are acked with 200 so they are not redelivered forever
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_MissingEmployerEmailIsAcked(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	rec := performPush(fx, pushRequest(t, &service.ApplicationEvent{
		Type:          service.EventApplicationCreated,
		ApplicationID: "11111111-1111-1111-1111-111111111111",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_InvalidBase64Data(t *testing.T) {
	t.Parallel()

	fx := createTestEmailHandler(t)

	var pushMsg pubsub.PubSubPushMessage
	pushMsg.Message.Data = "not base64!!"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := performPush(fx, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
