package slotapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/requestid"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

// Client maps the slot operations onto the remote slot service. It performs a
// single request per call with no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.SlotAPIConfig, logger *slog.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for local development certificates
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) ListAllSlots(ctx context.Context) ([]slot.Slot, error) {
	return c.listSlots(ctx, "list all slots", "/slots")
}

// ListAvailableSlots relies entirely on the service to filter out booked slots.
func (c *Client) ListAvailableSlots(ctx context.Context) ([]slot.Slot, error) {
	return c.listSlots(ctx, "list available slots", "/slots/available")
}

func (c *Client) CreateSlot(ctx context.Context, draft slot.Draft) (*slot.Slot, error) {
	const op = "create slot"
	status, body, err := c.do(ctx, op, http.MethodPost, "/slots", newCreateSlotRequest(draft))
	if err != nil {
		return nil, err
	}

	var created slotDTO
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, c.decodeError(op, status, err)
	}
	s := created.toDomain()
	return &s, nil
}

// BookSlot returns the raw response body; its shape is defined by the service.
func (c *Client) BookSlot(ctx context.Context, id string) ([]byte, error) {
	return c.slotAction(ctx, "book slot", id, "book")
}

func (c *Client) CancelBooking(ctx context.Context, id string) ([]byte, error) {
	return c.slotAction(ctx, "cancel booking", id, "cancel")
}

func (c *Client) listSlots(ctx context.Context, op, path string) ([]slot.Slot, error) {
	status, body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var env slotListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, c.decodeError(op, status, err)
	}
	return toDomainList(env.Data), nil
}

func (c *Client) slotAction(ctx context.Context, op, id, action string) ([]byte, error) {
	if err := slot.ValidateID(id); err != nil {
		return nil, errs.Wrap(err, op)
	}
	_, body, err := c.do(ctx, op, http.MethodPost, "/slots/"+url.PathEscape(id)+"/"+action, nil)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errs.Wrap(err, op+": encode request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, errs.Wrap(err, op+": build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := requestid.FromOrNew(ctx)
	req.Header.Set(requestid.Header, reqID)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Slot service unreachable",
			"op", op, "method", method, "path", path, "request_id", reqID, "error", err)
		return 0, nil, &NetworkError{Op: op, err: errs.Wrap(err, op)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, &NetworkError{Op: op, err: errs.Wrap(err, op+": read body")}
	}

	c.logger.Debug("Slot service call",
		"op", op,
		"method", method,
		"path", path,
		"status_code", resp.StatusCode,
		"duration", time.Since(startTime),
		"request_id", reqID,
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, body, &RequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
		}
	}
	return resp.StatusCode, body, nil
}

func (c *Client) decodeError(op string, status int, err error) error {
	c.logger.Warn("Slot service returned an undecodable body", "op", op, "status_code", status, "error", err)
	return &RequestError{Op: op, StatusCode: status, err: errs.Wrap(err, op+": decode response")}
}
