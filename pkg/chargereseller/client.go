package chargereseller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the chr724 EasyCharge API base URL.
	DefaultBaseURL = "https://chr724.ir"

	// DefaultTimeout bounds a single outbound call. There are no retries.
	DefaultTimeout = 10 * time.Second

	topUpEndpoint      = "/services/v3/EasyCharge/TopUp"
	buyProductEndpoint = "/services/v3/EasyCharge/BuyProduct"
)

// Config holds EasyCharge reseller API configuration.
type Config struct {
	BaseURL      string
	WebServiceID string
	RedirectURL  string
	Timeout      time.Duration
}

// Client is a minimal HTTP client for the chr724 EasyCharge reseller API.
// The API is JSONP-over-GET: every call sends a callback token and the
// response arrives wrapped in a callback(...) envelope that the client
// unwraps before returning.
type Client struct {
	httpClient *http.Client
	config     Config
	debug      bool
}

// NewClient constructs a new EasyCharge client with sane defaults.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		debug:      os.Getenv("ENV") == "development",
	}
}

// TopUp applies a direct balance charge to the given cellphone.
func (c *Client) TopUp(ctx context.Context, p ChargeParams) (json.RawMessage, error) {
	return c.doRequest(ctx, topUpEndpoint, p, false)
}

// BuyProduct purchases a redeemable pincode product for the given operator
// and amount.
func (c *Client) BuyProduct(ctx context.Context, p ChargeParams) (json.RawMessage, error) {
	return c.doRequest(ctx, buyProductEndpoint, p, true)
}

// doRequest performs the HTTP GET against the reseller API with the payload
// serialized as query parameters, then unwraps the JSONP response body into
// plain JSON.
func (c *Client) doRequest(ctx context.Context, endpoint string, p ChargeParams, pincode bool) (json.RawMessage, error) {
	callback, err := GenerateCallbackName()
	if err != nil {
		return nil, fmt.Errorf("failed to generate callback token: %w", err)
	}
	nonce, err := generateNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	params := c.buildParams(p, pincode, nonce)
	params.Set("callback", callback)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", c.config.BaseURL+endpoint).
			Str("callback", callback).
			Msg("[EASYCHARGE] Outgoing request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("[EASYCHARGE] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	return UnwrapJSONP(string(respBody), callback)
}

// isTimeout reports whether err is a deadline expiry, either from the
// client-side timeout or an expiring context.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
