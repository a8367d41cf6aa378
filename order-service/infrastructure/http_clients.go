package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/pkg/errors"
)

// serviceError is the error envelope the downstream REST services return.
type serviceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func postJSON(ctx context.Context, client *http.Client, url string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}
	return resp, nil
}

func decodeServiceError(resp *http.Response) serviceError {
	var svcErr serviceError
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(body, &svcErr)
	}
	if svcErr.Message == "" {
		svcErr.Message = resp.Status
	}
	return svcErr
}

var _ activities.PaymentService = (*PaymentHTTPClient)(nil)

// PaymentHTTPClient calls the payment service's REST API.
type PaymentHTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewPaymentHTTPClient creates a new PaymentHTTPClient
func NewPaymentHTTPClient(baseURL string) *PaymentHTTPClient {
	return &PaymentHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// DebitCreditCard charges the customer's card. Declines and bad payment
// credentials come back tagged with their business failure reason.
func (c *PaymentHTTPClient) DebitCreditCard(ctx context.Context, req *activities.DebitCreditCardRequest) (*activities.DebitCreditCardResponse, error) {
	resp, err := postJSON(ctx, c.client, c.baseURL+"/payments/debits", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var debitResp activities.DebitCreditCardResponse
		if err := json.NewDecoder(resp.Body).Decode(&debitResp); err != nil {
			return nil, errors.Wrap(err, "failed to decode debit response")
		}
		return &debitResp, nil

	case resp.StatusCode == http.StatusPaymentRequired:
		svcErr := decodeServiceError(resp)
		if svcErr.Code == "invalid_payment_method" {
			return nil, domain.NewInvalidPaymentMethodError(svcErr.Message, nil)
		}
		return nil, domain.NewPaymentDeclinedError(svcErr.Message, nil)

	default:
		svcErr := decodeServiceError(resp)
		return nil, errors.Errorf("payment service returned %d: %s", resp.StatusCode, svcErr.Message)
	}
}

// ReversePaymentTransactions reverses every payment transaction recorded
// for the saga's transaction ID. The payment service treats an unknown
// transaction as a no-op, which makes this safe to call even when the
// debit never committed, and safe to call twice.
func (c *PaymentHTTPClient) ReversePaymentTransactions(ctx context.Context, req *activities.ReversePaymentTransactionsRequest) error {
	resp, err := postJSON(ctx, c.client, c.baseURL+"/payments/reversals", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	svcErr := decodeServiceError(resp)
	return errors.Errorf("payment service returned %d: %s", resp.StatusCode, svcErr.Message)
}

var _ activities.WarehouseService = (*WarehouseHTTPClient)(nil)

// WarehouseHTTPClient calls the warehouse service's REST API.
type WarehouseHTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewWarehouseHTTPClient creates a new WarehouseHTTPClient
func NewWarehouseHTTPClient(baseURL string) *WarehouseHTTPClient {
	return &WarehouseHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// CheckInventory verifies every requested product is in stock.
func (c *WarehouseHTTPClient) CheckInventory(ctx context.Context, req *activities.CheckInventoryRequest) error {
	resp, err := postJSON(ctx, c.client, c.baseURL+"/inventory/checks", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil

	case resp.StatusCode == http.StatusConflict:
		svcErr := decodeServiceError(resp)
		return domain.NewOutOfStockError(svcErr.Message, nil)

	default:
		svcErr := decodeServiceError(resp)
		return errors.Errorf("warehouse service returned %d: %s", resp.StatusCode, svcErr.Message)
	}
}

var _ activities.ShipperService = (*ShipperHTTPClient)(nil)

// ShipperHTTPClient calls the shipper service's REST API.
type ShipperHTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewShipperHTTPClient creates a new ShipperHTTPClient
func NewShipperHTTPClient(baseURL string) *ShipperHTTPClient {
	return &ShipperHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// CreateTrackingNumber requests a shipment tracking number.
func (c *ShipperHTTPClient) CreateTrackingNumber(ctx context.Context, req *activities.CreateTrackingNumberRequest) (string, error) {
	resp, err := postJSON(ctx, c.client, c.baseURL+"/shipments/tracking-numbers", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		svcErr := decodeServiceError(resp)
		return "", errors.Errorf("shipper service returned %d: %s", resp.StatusCode, svcErr.Message)
	}

	var trackResp struct {
		TrackingNumber string `json:"tracking_number"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&trackResp); err != nil {
		return "", errors.Wrap(err, "failed to decode tracking response")
	}
	if trackResp.TrackingNumber == "" {
		return "", errors.New("shipper returned empty tracking number")
	}
	return trackResp.TrackingNumber, nil
}
