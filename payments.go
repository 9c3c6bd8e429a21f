package voltage

import (
	"context"
	"fmt"
	"net/http"
)

type CreatePaymentRequest struct {
	ID          string      `json:"id"`
	WalletID    string      `json:"wallet_id"`
	Currency    string      `json:"currency"`
	Kind        PaymentKind `json:"payment_kind"`
	AmountMsats *int64      `json:"amount_msats"`
	Description string      `json:"description,omitempty"`
}

type SendPaymentRequest struct {
	ID       string          `json:"id"`
	WalletID string          `json:"wallet_id"`
	Currency string          `json:"currency"`
	Kind     PaymentKind     `json:"type"`
	Data     SendPaymentData `json:"data"`
}

type SendPaymentData struct {
	PaymentRequest string `json:"payment_request,omitempty"`
	AmountMsats    *int64 `json:"amount_msats,omitempty"`
	MaxFeeMsats    *int64 `json:"max_fee_msats,omitempty"`
	Address        string `json:"address,omitempty"`
	AmountSats     *int64 `json:"amount_sats,omitempty"`
	MaxFeeSats     *int64 `json:"max_fee_sats,omitempty"`
}

// CreatePayment creates a receive payment (invoice, address, or both for
// bip21) and waits for the service to finish generating it. The creation
// call itself only gets a 202 acknowledgment; the returned Payment is the
// result of polling until it leaves the generating status. A nil poll uses
// the defaults. A missing ID is filled with a generated UUID before sending.
func (c *Client) CreatePayment(ctx context.Context, organizationID, environmentID string, req CreatePaymentRequest, poll *PollConfig) (*Payment, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "wallet_id", req.WalletID); err != nil {
		return nil, err
	}
	if req.ID == "" {
		req.ID = c.newID()
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/payments", organizationID, environmentID)
	if err := c.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return nil, err
	}
	return c.pollPayment(ctx, organizationID, environmentID, req.ID, DirectionReceive, poll)
}

// SendPayment pays a bolt11 invoice, an onchain address, or a bip21 URI from
// a wallet, polling until the payment leaves the sending status.
func (c *Client) SendPayment(ctx context.Context, organizationID, environmentID string, req SendPaymentRequest, poll *PollConfig) (*Payment, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "wallet_id", req.WalletID); err != nil {
		return nil, err
	}
	if req.ID == "" {
		req.ID = c.newID()
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/payments", organizationID, environmentID)
	if err := c.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return nil, err
	}
	return c.pollPayment(ctx, organizationID, environmentID, req.ID, DirectionSend, poll)
}

func (c *Client) GetPayment(ctx context.Context, organizationID, environmentID, paymentID string) (*Payment, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "payment_id", paymentID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/payments/%s", organizationID, environmentID, paymentID)
	var payment Payment
	if err := c.do(ctx, http.MethodGet, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) ListPayments(ctx context.Context, organizationID, environmentID string, opts *ListPaymentsOptions) (*PaymentsPage, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/payments%s", organizationID, environmentID, encodeQuery(opts.query()))
	var page PaymentsPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPaymentHistory returns the ordered status transitions a payment has
// gone through.
func (c *Client) GetPaymentHistory(ctx context.Context, organizationID, environmentID, paymentID string) (*PaymentHistory, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "payment_id", paymentID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/payments/%s/history", organizationID, environmentID, paymentID)
	var history PaymentHistory
	if err := c.do(ctx, http.MethodGet, path, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
