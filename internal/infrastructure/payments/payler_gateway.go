package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionTimeout = 45 * time.Second
	refundTimeout  = 15 * time.Second

	headerTerminalKey      = "SessionTerminalKey"
	headerTerminalPassword = "SessionTerminalPassword"

	maxResponseBytes = 1 << 20
)

var ErrPaylerGatewayNotConfigured = errors.New("payler gateway not configured")

// PaylerGateway talks to the Payler hosted-session API.
//
// Endpoints (relative to the account base URL):
//   - POST /sessions                  create a hosted payment session
//   - POST /sessions/{id}/refund      refund part of a session
//
// In mock mode no request leaves the process; sessions and refunds succeed
// with generated ids so the checkout flow can be exercised locally.
type PaylerGateway struct {
	http     *http.Client
	log      *zap.Logger
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*PaylerGateway)(nil)

func NewPaylerGateway(client *http.Client, mockMode bool, log *zap.Logger) *PaylerGateway {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if mockMode {
		log.Info("payler gateway mock mode enabled")
	}
	return &PaylerGateway{http: client, log: log, mockMode: mockMode}
}

type sessionEnvelope struct {
	Session sessionBody `json:"session"`
}

type sessionBody struct {
	Lifetime        string         `json:"lifetime"`
	ReturnURLs      returnURLsBody `json:"returnURLs"`
	NotificationURL string         `json:"notificationURL"`
	Payment         paymentBody    `json:"payment"`
	Order           orderBody      `json:"order"`
}

type urlBody struct {
	URL string `json:"url"`
}

type returnURLsBody struct {
	Default urlBody `json:"default"`
	Success urlBody `json:"success"`
	Failure urlBody `json:"failure"`
}

type paymentBody struct {
	Type       string   `json:"type"`
	Page       pageBody `json:"page"`
	IsTwoPhase bool     `json:"isTwoPhase"`
}

type pageBody struct {
	Template       string `json:"template"`
	Lang           string `json:"lang"`
	ShowSavedCards bool   `json:"showSavedCards"`
}

type orderBody struct {
	ID               string               `json:"id"`
	Currency         string               `json:"currency"`
	Amount           int64                `json:"amount"`
	Customer         customerBody         `json:"customer"`
	AdditionalFields additionalFieldsBody `json:"additionalFields"`
}

type customerBody struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	PersonsData personsDataBody `json:"personsData"`
}

type personsDataBody struct {
	PhoneNumber string `json:"phoneNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Address     string `json:"address"`
}

type additionalFieldsBody struct {
	Custom map[string]string `json:"custom"`
}

type apiError struct {
	Title string `json:"title"`
}

type sessionResponse struct {
	Session struct {
		ID      string    `json:"id"`
		Error   *apiError `json:"error"`
		Payment struct {
			Page struct {
				URL string `json:"url"`
			} `json:"page"`
		} `json:"payment"`
	} `json:"session"`
}

type refundEnvelope struct {
	Session struct {
		Refund struct {
			Amount int64 `json:"amount"`
		} `json:"refund"`
	} `json:"session"`
}

type refundResponse struct {
	Refund struct {
		Status string    `json:"status"`
		Error  *apiError `json:"error"`
	} `json:"refund"`
}

func toSessionEnvelope(req entities.SessionRequest) sessionEnvelope {
	b := req.Customer.Billing
	custom := req.CustomFields
	if custom == nil {
		custom = map[string]string{}
	}
	return sessionEnvelope{Session: sessionBody{
		Lifetime: req.Lifetime,
		ReturnURLs: returnURLsBody{
			Default: urlBody{URL: req.ReturnURLs.Default},
			Success: urlBody{URL: req.ReturnURLs.Success},
			Failure: urlBody{URL: req.ReturnURLs.Failure},
		},
		NotificationURL: req.NotificationURL,
		Payment: paymentBody{
			Type: "regular",
			Page: pageBody{Template: req.PageTemplate, Lang: req.PageLang},
		},
		Order: orderBody{
			ID:       req.OrderID,
			Currency: req.Currency,
			Amount:   req.AmountMinor,
			Customer: customerBody{
				ID:    req.Customer.ID,
				Email: b.Email,
				PersonsData: personsDataBody{
					PhoneNumber: b.Phone,
					FirstName:   b.FirstName,
					LastName:    b.LastName,
					Country:     b.Country,
					State:       b.State,
					City:        b.City,
					Zip:         b.Postcode,
					Address:     b.Address1,
				},
			},
			AdditionalFields: additionalFieldsBody{Custom: custom},
		},
	}}
}

func (g *PaylerGateway) CreateSession(ctx context.Context, account entities.ProcessorAccount, req entities.SessionRequest) (entities.SessionResult, error) {
	if g == nil {
		return entities.SessionResult{}, ErrPaylerGatewayNotConfigured
	}
	log := g.log.With(zap.String("hash_order_id", req.OrderID), zap.Bool("test_mode", account.TestMode))

	if g.mockMode {
		id := uuid.NewString()
		log.Info("mock create session", zap.String("session_id", id))
		return entities.SessionResult{
			SessionID:      id,
			PaymentPageURL: req.ReturnURLs.Success,
		}, nil
	}

	var out sessionResponse
	if err := g.post(ctx, account, account.BaseURL+"/sessions", sessionTimeout, nil, toSessionEnvelope(req), &out); err != nil {
		log.Error("create session failed", zap.Error(err))
		return entities.SessionResult{}, err
	}
	if out.Session.Error != nil {
		log.Warn("create session rejected", zap.String("title", out.Session.Error.Title))
		return entities.SessionResult{}, &entities.ProcessorRejectedError{Title: out.Session.Error.Title}
	}

	res := entities.SessionResult{
		SessionID:      strings.TrimSpace(out.Session.ID),
		PaymentPageURL: out.Session.Payment.Page.URL,
	}
	log.Info("create session success", zap.String("session_id", res.SessionID))
	return res, nil
}

func (g *PaylerGateway) RefundSession(ctx context.Context, account entities.ProcessorAccount, sessionID string, amountMinor int64) (entities.RefundResult, error) {
	if g == nil {
		return entities.RefundResult{}, ErrPaylerGatewayNotConfigured
	}
	log := g.log.With(zap.String("session_id", sessionID), zap.Int64("amount", amountMinor))

	if g.mockMode {
		log.Info("mock refund")
		return entities.RefundResult{Status: entities.RefundStatusRefunded}, nil
	}

	var body refundEnvelope
	body.Session.Refund.Amount = amountMinor

	endpoint := account.BaseURL + "/sessions/" + url.PathEscape(sessionID) + "/refund"
	headers := map[string]string{"Cache-Control": "no-cache"}

	var out refundResponse
	if err := g.post(ctx, account, endpoint, refundTimeout, headers, body, &out); err != nil {
		log.Error("refund failed", zap.Error(err))
		return entities.RefundResult{}, err
	}

	res := entities.RefundResult{Status: entities.RefundStatus(strings.ToLower(strings.TrimSpace(out.Refund.Status)))}
	if out.Refund.Error != nil {
		res.ErrorTitle = out.Refund.Error.Title
	}
	log.Info("refund response", zap.String("status", string(res.Status)))
	return res, nil
}

// post sends one JSON request and decodes the JSON answer into out. Every
// failure before a decodable body exists is reported as
// ErrProcessorUnavailable. Non-2xx answers are still decoded since Payler
// reports rejections inside the body.
func (g *PaylerGateway) post(ctx context.Context, account entities.ProcessorAccount, endpoint string, timeout time.Duration, extra map[string]string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrProcessorUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerTerminalKey, account.TerminalKey)
	req.Header.Set(headerTerminalPassword, account.TerminalPassword)
	for k, v := range extra {
		req.Header.Set(k, v)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrProcessorUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", entities.ErrProcessorUnavailable, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: status %d: unreadable body: %v", entities.ErrProcessorUnavailable, resp.StatusCode, err)
	}
	return nil
}
