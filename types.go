package voltage

import "time"

type PaymentDirection string

const (
	DirectionSend    PaymentDirection = "send"
	DirectionReceive PaymentDirection = "receive"
)

type PaymentKind string

const (
	KindBolt11  PaymentKind = "bolt11"
	KindOnchain PaymentKind = "onchain"
	KindBIP21   PaymentKind = "bip21"
)

// PaymentStatus is the server-side lifecycle status of a payment. Receive
// payments move generating -> receiving -> expired/failed/completed; send
// payments move sending -> failed/completed.
type PaymentStatus string

const (
	StatusGenerating PaymentStatus = "generating"
	StatusReceiving  PaymentStatus = "receiving"
	StatusSending    PaymentStatus = "sending"
	StatusExpired    PaymentStatus = "expired"
	StatusFailed     PaymentStatus = "failed"
	StatusCompleted  PaymentStatus = "completed"
)

// ErrorDetail is the structured error the service attaches to a failed
// payment or wallet.
type ErrorDetail struct {
	Type   string `json:"type"`
	Detail string `json:"detail,omitempty"`
}

type Payment struct {
	ID             string           `json:"id"`
	WalletID       string           `json:"wallet_id"`
	OrganizationID string           `json:"organization_id"`
	EnvironmentID  string           `json:"environment_id"`
	Currency       string           `json:"currency"`
	Direction      PaymentDirection `json:"direction"`
	Kind           PaymentKind      `json:"type"`
	Status         PaymentStatus    `json:"status"`
	Data           PaymentData      `json:"data"`
	Error          *ErrorDetail     `json:"error,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PaymentData carries the kind-specific payload of a payment. Which fields
// are set depends on the payment's type: bolt11 payments carry a payment
// request, onchain payments an address and receipts/outflows, bip21 payments
// both.
type PaymentData struct {
	PaymentRequest string               `json:"payment_request,omitempty"`
	Address        string               `json:"address,omitempty"`
	AmountMsats    *int64               `json:"amount_msats,omitempty"`
	AmountSats     *int64               `json:"amount_sats,omitempty"`
	MaxFeeMsats    *int64               `json:"max_fee_msats,omitempty"`
	MaxFeeSats     *int64               `json:"max_fee_sats,omitempty"`
	FeeMsats       *int64               `json:"fee_msats,omitempty"`
	Description    string               `json:"description,omitempty"`
	Receipts       []OnchainTransaction `json:"receipts,omitempty"`
	Outflows       []OnchainTransaction `json:"outflows,omitempty"`
}

type OnchainTransaction struct {
	TxID                  string `json:"tx_id"`
	AmountSats            int64  `json:"amount_sats"`
	RequiredConfirmations int    `json:"required_confirmations_num"`
	HeightMined           *int64 `json:"height_mined_at,omitempty"`
}

type PaymentsPage struct {
	Items  []Payment `json:"items"`
	Offset int64     `json:"offset"`
	Limit  int64     `json:"limit"`
	Total  int64     `json:"total"`
}

type PaymentHistory struct {
	Events []PaymentEvent `json:"events"`
}

type PaymentEvent struct {
	Time     time.Time `json:"time"`
	Position int       `json:"position"`
	Type     string    `json:"type"`
}

type Wallet struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	EnvironmentID  string       `json:"environment_id"`
	Name           string       `json:"name"`
	Network        string       `json:"network"`
	Active         bool         `json:"active"`
	Limit          int64        `json:"limit"`
	LineOfCreditID string       `json:"line_of_credit_id,omitempty"`
	Balances       []Balance    `json:"balances"`
	Holds          []Hold       `json:"holds"`
	Error          *ErrorDetail `json:"error,omitempty"`
}

type Balance struct {
	ID            string    `json:"id"`
	WalletID      string    `json:"wallet_id"`
	EffectiveTime time.Time `json:"effective_time"`
	Available     int64     `json:"available"`
	Total         int64     `json:"total"`
	Network       string    `json:"network"`
	Currency      string    `json:"currency"`
}

type Hold struct {
	ID            string    `json:"id"`
	AmountMsats   int64     `json:"amount_msats"`
	EffectiveTime time.Time `json:"effective_time"`
}

type LedgerEvent struct {
	PaymentID     string    `json:"payment_id,omitempty"`
	AmountMsats   int64     `json:"amount_msats"`
	Currency      string    `json:"currency"`
	EffectiveTime time.Time `json:"effective_time"`
	Type          string    `json:"type"`
}

type WalletLedger struct {
	Items  []LedgerEvent `json:"items"`
	Offset int64         `json:"offset"`
	Limit  int64         `json:"limit"`
	Total  int64         `json:"total"`
}

type WebhookStatus string

const (
	WebhookActive  WebhookStatus = "active"
	WebhookStopped WebhookStatus = "stopped"
	WebhookDeleted WebhookStatus = "deleted"
)

type Webhook struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	EnvironmentID  string        `json:"environment_id"`
	URL            string        `json:"url"`
	Name           string        `json:"name"`
	Events         []string      `json:"events"`
	Status         WebhookStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty"`
}

// WebhookSecret is the signing secret for a webhook. The service returns it
// only when the webhook is created or its key is rotated; it cannot be read
// back later.
type WebhookSecret struct {
	ID     string `json:"id"`
	Secret string `json:"shared_secret"`
}

type LineOfCredit struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Limit          int64      `json:"limit"`
	Allocated      int64      `json:"allocated_limit"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	DisabledAt     *time.Time `json:"disabled_at,omitempty"`
}

// Int returns a pointer to i, for optional numeric fields and filters.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }
