package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shayangolmezerji/ChargeAPI/internal/config"
	"github.com/shayangolmezerji/ChargeAPI/internal/service"
	"github.com/shayangolmezerji/ChargeAPI/pkg/chargereseller"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the /charge endpoint against the given upstream.
func newTestRouter(upstreamURL, webServiceID string, timeout time.Duration) *gin.Engine {
	resellerCfg := &config.ResellerConfig{
		WebServiceID: webServiceID,
		RedirectURL:  "https://domain.com/charge.php",
		BaseURL:      upstreamURL,
		Timeout:      timeout,
	}
	client := chargereseller.NewClient(chargereseller.Config{
		BaseURL:      resellerCfg.BaseURL,
		WebServiceID: resellerCfg.WebServiceID,
		RedirectURL:  resellerCfg.RedirectURL,
		Timeout:      resellerCfg.Timeout,
	})
	svc := service.NewChargeService(client, resellerCfg)

	router := gin.New()
	router.POST("/charge", NewChargeHandler(svc).CreateCharge)
	return router
}

func postCharge(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/charge", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateChargeSuccessPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `%s(({"status":"ok","ref":7}))`, r.URL.Query().Get("callback"))
	}))
	defer srv.Close()

	router := newTestRouter(srv.URL, "ws-123", time.Second)
	w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"status":"ok","ref":7}` {
		t.Errorf("body = %s, want upstream JSON verbatim", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestCreateChargeValidationErrors(t *testing.T) {
	var hit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	router := newTestRouter(srv.URL, "ws-123", time.Second)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed body", `{"amount":`, "INVALID_BODY"},
		{"amount too low", `{"amount":1000,"phone":"09121234567","charge_type":"direct"}`, "AMOUNT_OUT_OF_RANGE"},
		{"amount too high", `{"amount":25000,"phone":"09121234567","charge_type":"direct"}`, "AMOUNT_OUT_OF_RANGE"},
		{"bad charge type", `{"amount":5000,"phone":"09121234567","charge_type":"gift"}`, "INVALID_CHARGE_TYPE"},
		{"unknown operator", `{"amount":5000,"phone":"09512345678","charge_type":"direct"}`, "OPERATOR_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCharge(t, router, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
			assertErrorCode(t, w, tt.wantCode)
		})
	}
	if hit {
		t.Error("upstream was called for an invalid request")
	}
}

func TestCreateChargeMissingWebServiceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without a web service ID")
	}))
	defer srv.Close()

	router := newTestRouter(srv.URL, "", time.Second)
	w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500; body: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "MISSING_WEBSERVICE_ID")
}

func TestCreateChargeUpstreamFailures(t *testing.T) {
	t.Run("upstream 500 maps to 502", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		router := newTestRouter(srv.URL, "ws-123", time.Second)
		w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unparseable body maps to 502", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "garbage((")
		}))
		defer srv.Close()

		router := newTestRouter(srv.URL, "ws-123", time.Second)
		w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("timeout maps to 504", func(t *testing.T) {
		block := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-block
		}))
		defer srv.Close()
		defer close(block)

		router := newTestRouter(srv.URL, "ws-123", 50*time.Millisecond)
		w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("status = %d, want 504; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unreachable maps to 503", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		router := newTestRouter(srv.URL, "ws-123", time.Second)
		w := postCharge(t, router, `{"amount":5000,"phone":"09121234567","charge_type":"direct"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503; body: %s", w.Code, w.Body.String())
		}
	})
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error envelope is not JSON: %v; body: %s", err, w.Body.String())
	}
	if resp.Success {
		t.Error("error envelope has success=true")
	}
	if resp.Error == nil || resp.Error.Code != want {
		t.Errorf("error code = %+v, want %s", resp.Error, want)
	}
}
