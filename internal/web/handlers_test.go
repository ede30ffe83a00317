package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira-care/mira-agent/internal/audit"
	"github.com/mira-care/mira-agent/internal/chat"
	"github.com/mira-care/mira-agent/internal/config"
	"github.com/mira-care/mira-agent/internal/notify"
	"github.com/mira-care/mira-agent/internal/policy"
	"github.com/mira-care/mira-agent/internal/severity"
	"github.com/mira-care/mira-agent/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubReplies struct{ text string }

func (s stubReplies) Generate(ctx context.Context, userMessage string) string { return s.text }

type stubClassifier struct{ a severity.Assessment }

func (s stubClassifier) Classify(ctx context.Context, text string) severity.Assessment { return s.a }

type stubDirectory struct{ contact *store.Contact }

func (s stubDirectory) PrimaryContact(ctx context.Context, userID string) (*store.Contact, error) {
	return s.contact, nil
}

type okGateway struct{}

func (okGateway) SendSMS(ctx context.Context, to, body string) (string, error) { return "SM1", nil }
func (okGateway) PlaceCall(ctx context.Context, to string) (string, error)     { return "CA1", nil }

func testRouter(a severity.Assessment, contact *store.Contact) *gin.Engine {
	mediator := chat.NewMediator(
		stubReplies{text: "I'm here with you."},
		stubClassifier{a: a},
		stubDirectory{contact: contact},
		notify.NewNotifierWithRetry(okGateway{}, notify.RetryConfig{MaxAttempts: 3, Delay: time.Millisecond}),
		audit.NewLogger(nil, nil),
		nil,
		policy.DefaultThresholds,
	)

	router := gin.New()
	router.GET("/api/health", HealthHandler)
	router.POST("/api/mira_chat", ChatHandler(mediator))
	router.GET("/_debug/contact/:user_id", ContactDebugHandler(stubDirectory{contact: contact}))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestHealthHandler(t *testing.T) {
	router := testRouter(severity.Assessment{}, nil)
	w, payload := doJSON(t, router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "mira-agent", payload["service"])
}

func TestChatHandlerSevere(t *testing.T) {
	contact := &store.Contact{
		Name: "Jamie", PhoneNumber: "+15550100",
		IsPrimary: true, OptedIn: true, AllowAutoCall: true,
	}
	router := testRouter(severity.Assessment{Label: severity.LabelSevere, Score: 0.95}, contact)

	w, payload := doJSON(t, router, http.MethodPost, "/api/mira_chat",
		`{"user_id": "u1", "message": "I want to end my life"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I'm here with you.", payload["response"])
	assert.Equal(t, true, payload["crisis_detected"])
	assert.Equal(t, "severe", payload["severity"])
	assert.Equal(t, 0.95, payload["severity_score"])
	assert.Equal(t, "emergency_call", payload["action_recommended"])
	assert.Equal(t, "emergency_call", payload["action_taken"])
	assert.Equal(t, true, payload["contact_notified"])
	assert.Equal(t, true, payload["sms_sent"])
	assert.Equal(t, true, payload["call_initiated"])
}

func TestChatHandlerScoreRounding(t *testing.T) {
	router := testRouter(severity.Assessment{Label: severity.LabelModerate, Score: 0.666666}, nil)

	w, payload := doJSON(t, router, http.MethodPost, "/api/mira_chat",
		`{"user_id": "u1", "message": "hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.67, payload["severity_score"])
}

func TestChatHandlerBadRequests(t *testing.T) {
	router := testRouter(severity.Assessment{}, nil)

	for _, body := range []string{
		`{}`,
		`{"user_id": "u1"}`,
		`{"message": "hi"}`,
		`not json at all`,
	} {
		w, payload := doJSON(t, router, http.MethodPost, "/api/mira_chat", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, "user_id and message required", payload["error"])
	}
}

func TestContactDebugHandler(t *testing.T) {
	contact := &store.Contact{Name: "Jamie", PhoneNumber: "+15550100", IsPrimary: true}
	router := testRouter(severity.Assessment{}, contact)

	w, payload := doJSON(t, router, http.MethodGet, "/_debug/contact/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["found"])

	missing := testRouter(severity.Assessment{}, nil)
	w, payload = doJSON(t, missing, http.MethodGet, "/_debug/contact/u1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, payload["found"])
}

func TestServerStartStop(t *testing.T) {
	srv := New(config.ServerConfig{Addr: "127.0.0.1:0"}, nil, nil, nil)
	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Stop(ctx))
}
