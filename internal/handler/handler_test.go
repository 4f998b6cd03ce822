package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zenify-music/email-server/internal/config"
	"github.com/zenify-music/email-server/internal/domain"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *domain.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type panicSender struct{}

func (panicSender) Send(context.Context, *domain.MailMessage) error {
	panic("smtp exploded")
}

func testConfig(withCredentials bool) *config.Config {
	cfg := &config.Config{}
	cfg.Port = "3000"
	cfg.CORS.AllowedOrigins = []string{"*"}
	if withCredentials {
		cfg.Gmail.Email = "noreply@zenify.app"
		cfg.Gmail.Password = "app-password"
	}
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config, sender *MockSender) *Handler {
	t.Helper()

	h, err := NewHandler(cfg, sender)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func postSendOTP(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send-otp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, testConfig(true), &MockSender{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	require.Equal(t, "Zenify Secure Email Server is Running.", rec.Body.String())
}

func TestSendOTP_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *domain.MailMessage) bool {
		return msg.To == "a@b.com" &&
			msg.From == "Zenify Security <noreply@zenify.app>" &&
			msg.Subject == "Your Verification Code - Zenify" &&
			strings.Contains(msg.HTMLBody, "123456")
	})).Return(nil).Once()

	h := newTestHandler(t, testConfig(true), sender)
	rec := postSendOTP(h, `{"email":"a@b.com","code":"123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())
	sender.AssertExpectations(t)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendOTP_CodeIsNotValidated(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *domain.MailMessage) bool {
		return strings.Contains(msg.HTMLBody, "not-a-number!")
	})).Return(nil).Once()

	h := newTestHandler(t, testConfig(true), sender)
	rec := postSendOTP(h, `{"email":"whatever","code":"not-a-number!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	sender.AssertExpectations(t)
}

func TestSendOTP_DuplicateRequestsSendTwice(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(t, testConfig(true), sender)
	body := `{"email":"a@b.com","code":"123456"}`

	require.Equal(t, http.StatusOK, postSendOTP(h, body).Code)
	require.Equal(t, http.StatusOK, postSendOTP(h, body).Code)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSendOTP_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing code", body: `{"email":"a@b.com"}`},
		{name: "missing email", body: `{"code":"123456"}`},
		{name: "missing both", body: `{}`},
		{name: "empty email", body: `{"email":"","code":"123456"}`},
		{name: "empty code", body: `{"email":"a@b.com","code":""}`},
		{name: "null values", body: `{"email":null,"code":null}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			h := newTestHandler(t, testConfig(true), sender)
			rec := postSendOTP(h, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"success":false,"message":"Missing email or code"}`, rec.Body.String())
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendOTP_MissingFieldsCheckedBeforeConfiguration(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, testConfig(false), &MockSender{})
	rec := postSendOTP(h, `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Missing email or code"}`, rec.Body.String())
}

func TestSendOTP_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email":`},
		{name: "not an object", body: `["a@b.com","123456"]`},
		{name: "non string code", body: `{"email":"a@b.com","code":123456}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			h := newTestHandler(t, testConfig(true), sender)
			rec := postSendOTP(h, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"success":false,"message":"Invalid request body"}`, rec.Body.String())
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendOTP_MissingCredentials(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"email":"a@b.com","code":"123456"}`,
		`{"email":"someone@example.org","code":"x"}`,
		`{"email":"not-an-email","code":"000000"}`,
	}

	for _, body := range bodies {
		sender := &MockSender{}
		h := newTestHandler(t, testConfig(false), sender)
		rec := postSendOTP(h, body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"success":false,"message":"Server configuration error"}`, rec.Body.String())
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	}
}

func TestSendOTP_PartialCredentials(t *testing.T) {
	t.Parallel()

	cfg := testConfig(true)
	cfg.Gmail.Password = ""

	h := newTestHandler(t, cfg, &MockSender{})
	rec := postSendOTP(h, `{"email":"a@b.com","code":"123456"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Server configuration error"}`, rec.Body.String())
}

func TestSendOTP_DeliveryError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 5.7.8 Username and Password not accepted")).Once()

	h := newTestHandler(t, testConfig(true), sender)
	rec := postSendOTP(h, `{"email":"a@b.com","code":"123456"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{
		"success": false,
		"message": "Failed to send email",
		"error": "535 5.7.8 Username and Password not accepted"
	}`, rec.Body.String())
	sender.AssertExpectations(t)
}

func TestSendOTP_PanicIsRecovered(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(testConfig(true), panicSender{})
	require.NoError(t, err)
	h.RegisterRoutes()

	rec := postSendOTP(h, `{"email":"a@b.com","code":"123456"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, testConfig(true), &MockSender{})

	req := httptest.NewRequest(http.MethodGet, "/send-otp", nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
