// Package hubtel talks to Hubtel's online checkout and transaction status APIs.
package hubtel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/accessviewafrica/summit-registration/registration"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultCheckoutBaseURL = "https://payproxyapi.hubtel.com"
	DefaultStatusBaseURL   = "https://api-txnstatus.hubtel.com"
	DefaultTimeout         = 20 * time.Second

	// Hubtel only settles in cedis.
	defaultCurrency = "GHS"

	successResponseCode = "0000"
	maxResponseBytes    = 1 << 20
)

type Config struct {
	AppID           string
	APIKey          string
	MerchantAccount string
	CheckoutBaseURL string
	StatusBaseURL   string
	Timeout         time.Duration
}

var _ registration.PaymentProvider = &Client{}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.CheckoutBaseURL == "" {
		cfg.CheckoutBaseURL = DefaultCheckoutBaseURL
	}
	if cfg.StatusBaseURL == "" {
		cfg.StatusBaseURL = DefaultStatusBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// IsConfigured reports whether all credentials needed to call Hubtel are set.
func (c *Client) IsConfigured() bool {
	return c.cfg.AppID != "" && c.cfg.APIKey != "" && c.cfg.MerchantAccount != ""
}

type initiateRequest struct {
	TotalAmount           float64 `json:"totalAmount"`
	Description           string  `json:"description"`
	CallbackURL           string  `json:"callbackUrl"`
	ReturnURL             string  `json:"returnUrl"`
	CancellationURL       string  `json:"cancellationUrl"`
	MerchantAccountNumber string  `json:"merchantAccountNumber"`
	ClientReference       string  `json:"clientReference"`
	PayeeName             string  `json:"payeeName,omitempty"`
	PayeeMobileNumber     string  `json:"payeeMobileNumber,omitempty"`
	PayeeEmail            string  `json:"payeeEmail,omitempty"`
}

type initiateResponse struct {
	ResponseCode string `json:"responseCode"`
	Status       string `json:"status"`
	Data         struct {
		CheckoutURL       string `json:"checkoutUrl"`
		CheckoutID        string `json:"checkoutId"`
		CheckoutDirectURL string `json:"checkoutDirectUrl"`
		ClientReference   string `json:"clientReference"`
	} `json:"data"`
}

func (c *Client) InitiateCharge(ctx context.Context, req registration.ChargeRequest) (registration.CheckoutHandle, error) {
	if !c.IsConfigured() {
		return registration.CheckoutHandle{}, NewNotConfiguredError()
	}

	body, err := json.Marshal(initiateRequest{
		TotalAmount:           req.Amount.AsMajorUnits(),
		Description:           req.Description,
		CallbackURL:           req.CallbackURL,
		ReturnURL:             req.ReturnURL,
		CancellationURL:       req.CancelURL,
		MerchantAccountNumber: c.cfg.MerchantAccount,
		ClientReference:       req.ClientReference,
		PayeeName:             req.PayerName,
		PayeeMobileNumber:     req.PayerPhone,
		PayeeEmail:            req.PayerEmail,
	})
	if err != nil {
		return registration.CheckoutHandle{}, NewFailedToBuildQueryError("Failed to encode checkout request", err)
	}

	var resp initiateResponse
	err = c.do(ctx, http.MethodPost, c.cfg.CheckoutBaseURL+"/items/initiate", body, &resp)
	if err != nil {
		return registration.CheckoutHandle{}, err
	}

	if resp.ResponseCode != successResponseCode || resp.Data.CheckoutURL == "" {
		return registration.CheckoutHandle{}, newRejectedError(REASON_INVALID_REQUEST, resp.ResponseCode, fmt.Sprintf("Checkout was not created: %s", resp.Status))
	}

	return registration.CheckoutHandle{
		CheckoutURL:       resp.Data.CheckoutURL,
		CheckoutID:        resp.Data.CheckoutID,
		CheckoutDirectURL: resp.Data.CheckoutDirectURL,
	}, nil
}

type statusResponse struct {
	Message      string `json:"message"`
	ResponseCode string `json:"responseCode"`
	Data         struct {
		Date                  string  `json:"date"`
		Status                string  `json:"status"`
		TransactionID         string  `json:"transactionId"`
		ExternalTransactionID string  `json:"externalTransactionId"`
		PaymentMethod         string  `json:"paymentMethod"`
		ClientReference       string  `json:"clientReference"`
		CurrencyCode          string  `json:"currencyCode"`
		Amount                float64 `json:"amount"`
		Charges               float64 `json:"charges"`
		AmountAfterCharges    float64 `json:"amountAfterCharges"`
		IsFulfilled           bool    `json:"isFulfilled"`
	} `json:"data"`
}

// QueryStatus asks Hubtel for the current state of a transaction. The raw
// provider status is returned unmapped.
func (c *Client) QueryStatus(ctx context.Context, clientReference string, ids registration.ProviderIDs) (registration.ProviderStatus, error) {
	if !c.IsConfigured() {
		return registration.ProviderStatus{}, NewNotConfiguredError()
	}

	query := url.Values{}
	query.Set("clientReference", clientReference)
	if ids.TransactionID != "" {
		query.Set("hubtelTransactionId", ids.TransactionID)
	}
	if ids.NetworkTransactionID != "" {
		query.Set("networkTransactionId", ids.NetworkTransactionID)
	}
	endpoint := fmt.Sprintf("%s/transactions/%s/status?%s", c.cfg.StatusBaseURL, url.PathEscape(c.cfg.MerchantAccount), query.Encode())

	var resp statusResponse
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	if err != nil {
		return registration.ProviderStatus{}, err
	}

	if resp.Data.Status == "" {
		return registration.ProviderStatus{}, newRejectedError(REASON_NOT_FOUND, resp.ResponseCode, fmt.Sprintf("No transaction status for %q: %s", clientReference, resp.Message))
	}

	currency := resp.Data.CurrencyCode
	if money.GetCurrency(currency) == nil {
		currency = defaultCurrency
	}

	data := registration.PaymentData{
		TransactionID:         resp.Data.TransactionID,
		ExternalTransactionID: resp.Data.ExternalTransactionID,
		Method:                resp.Data.PaymentMethod,
	}
	// a missing amount decodes as zero and must not replace the checkout amount
	if resp.Data.Amount > 0 {
		data.Amount = money.NewFromFloat(resp.Data.Amount, currency)
	}

	return registration.ProviderStatus{
		Status:       resp.Data.Status,
		ResponseCode: resp.ResponseCode,
		Data:         data,
	}, nil
}

type errorBody struct {
	ResponseCode string `json:"responseCode"`
	Message      string `json:"message"`
}

func (c *Client) do(ctx context.Context, method string, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return NewFailedToBuildQueryError("Failed to build Hubtel request", err)
	}
	req.SetBasicAuth(c.cfg.AppID, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return NewTimeoutError("Hubtel did not respond in time", err)
		}
		return NewProviderUnavailableError("Failed to reach Hubtel", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return NewTimeoutError("Hubtel did not respond in time", err)
		}
		return NewProviderUnavailableError("Failed to read Hubtel response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorBody
		_ = json.Unmarshal(respBody, &errBody)
		c.logger.WarnContext(ctx, "Hubtel request failed",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
			slog.String("response-code", errBody.ResponseCode),
		)
		message := errBody.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return newHTTPError(resp.StatusCode, errBody.ResponseCode, message)
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return NewInvalidResponseError("Failed to decode Hubtel response", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
