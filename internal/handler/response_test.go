package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

// newValidationEngine wires a route that only binds, so validation can
// be exercised without a service layer behind it.
func newValidationEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := InitTrans("en"); err != nil {
		t.Fatalf("init translator: %v", err)
	}

	engine := gin.New()
	engine.POST("/groups", func(c *gin.Context) {
		var req request.CreateGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleParamError(c, err)
			return
		}
		HandleCreated(c, req)
	})
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateGroupValidation(t *testing.T) {
	engine := newValidationEngine(t)

	// Two-character names fail the min=3 rule.
	w := postJSON(engine, "/groups", `{"name":"AB"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short name: status = %d, want 400: %s", w.Code, w.Body.String())
	}
	// The translated message is keyed by the json field name.
	if !strings.Contains(w.Body.String(), `"name"`) {
		t.Errorf("field name missing from validation message: %s", w.Body.String())
	}

	// Unknown privacy values fail the oneof rule.
	w = postJSON(engine, "/groups", `{"name":"Valid Name","privacy":"secret"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad privacy: status = %d, want 400", w.Code)
	}

	// Malformed JSON is a parameter error too.
	w = postJSON(engine, "/groups", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("broken json: status = %d, want 400", w.Code)
	}

	w = postJSON(engine, "/groups", `{"name":"Arabic Learners","privacy":"private"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("valid payload: status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{errorx.New(errorx.CodeInvalidParam, "bad input"), http.StatusBadRequest},
		{errorx.New(errorx.CodeUserExist, "taken"), http.StatusBadRequest},
		{errorx.New(errorx.CodeInvalidAuth, "bad credentials"), http.StatusUnauthorized},
		{errorx.New(errorx.CodeUnauthorized, "who are you"), http.StatusUnauthorized},
		{errorx.New(errorx.CodeForbidden, "not yours"), http.StatusForbidden},
		{errorx.New(errorx.CodeNotFound, "gone"), http.StatusNotFound},
		{errorx.New(errorx.CodeConflict, "duplicate"), http.StatusConflict},
		{errorx.ErrServerBusy, http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleError(c, tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestHandleSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleSuccess(c, gin.H{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"code":1000`) || !strings.Contains(body, `"hello":"world"`) {
		t.Errorf("envelope malformed: %s", body)
	}
}
