package voltage

import (
	"context"
	"fmt"
	"net/http"
)

type CreateWalletRequest struct {
	ID             string `json:"id"`
	EnvironmentID  string `json:"environment_id"`
	Name           string `json:"name"`
	Network        string `json:"network"`
	Limit          int64  `json:"limit"`
	LineOfCreditID string `json:"line_of_credit_id,omitempty"`
}

// CreateWallet asks the service to provision a wallet. The call is
// fire-and-forget: the service acknowledges with 202 and returns no body, so
// only the wallet id is returned. A missing ID is filled with a generated
// UUID before sending; fetch the wallet afterwards to observe its state.
func (c *Client) CreateWallet(ctx context.Context, organizationID string, req CreateWalletRequest) (string, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", req.EnvironmentID); err != nil {
		return "", err
	}
	if req.ID == "" {
		req.ID = c.newID()
	}
	path := fmt.Sprintf("/organizations/%s/wallets", organizationID)
	if err := c.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return "", err
	}
	return req.ID, nil
}

func (c *Client) GetWallet(ctx context.Context, organizationID, walletID string) (*Wallet, error) {
	if err := requireIDs("organization_id", organizationID, "wallet_id", walletID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/wallets/%s", organizationID, walletID)
	var wallet Wallet
	if err := c.do(ctx, http.MethodGet, path, nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (c *Client) ListWallets(ctx context.Context, organizationID string, opts *ListWalletsOptions) ([]Wallet, error) {
	if err := requireIDs("organization_id", organizationID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/wallets%s", organizationID, encodeQuery(opts.query()))
	var wallets []Wallet
	if err := c.do(ctx, http.MethodGet, path, nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *Client) DeleteWallet(ctx context.Context, organizationID, walletID string) error {
	if err := requireIDs("organization_id", organizationID, "wallet_id", walletID); err != nil {
		return err
	}
	path := fmt.Sprintf("/organizations/%s/wallets/%s", organizationID, walletID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetWalletLedger returns the wallet's credit/capture/hold/release events,
// newest page first by default.
func (c *Client) GetWalletLedger(ctx context.Context, organizationID, walletID string, opts *LedgerOptions) (*WalletLedger, error) {
	if err := requireIDs("organization_id", organizationID, "wallet_id", walletID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/wallets/%s/ledger%s", organizationID, walletID, encodeQuery(opts.query()))
	var ledger WalletLedger
	if err := c.do(ctx, http.MethodGet, path, nil, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}
