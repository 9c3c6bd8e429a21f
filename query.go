package voltage

import (
	"net/url"
	"strconv"
	"time"
)

type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// ListPaymentsOptions filters a payment listing. Zero-valued fields are
// omitted from the query string; Statuses serializes as one "statuses"
// parameter per value, in order.
type ListPaymentsOptions struct {
	Offset    *int
	Limit     *int
	WalletID  string
	Statuses  []PaymentStatus
	SortKey   string
	SortOrder SortOrder
	Kind      PaymentKind
	Direction PaymentDirection
	StartDate time.Time
	EndDate   time.Time
}

func (o *ListPaymentsOptions) query() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	addInt(v, "offset", o.Offset)
	addInt(v, "limit", o.Limit)
	addString(v, "wallet_id", o.WalletID)
	for _, s := range o.Statuses {
		v.Add("statuses", string(s))
	}
	addString(v, "sort_key", o.SortKey)
	addString(v, "sort_order", string(o.SortOrder))
	addString(v, "kind", string(o.Kind))
	addString(v, "direction", string(o.Direction))
	addTime(v, "start_date", o.StartDate)
	addTime(v, "end_date", o.EndDate)
	return v
}

// LedgerOptions filters a wallet ledger listing.
type LedgerOptions struct {
	Offset    *int
	Limit     *int
	PaymentID string
	StartDate time.Time
	EndDate   time.Time
	SortKey   string
	SortOrder SortOrder
}

func (o *LedgerOptions) query() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	addInt(v, "offset", o.Offset)
	addInt(v, "limit", o.Limit)
	addString(v, "payment_id", o.PaymentID)
	addTime(v, "start_date", o.StartDate)
	addTime(v, "end_date", o.EndDate)
	addString(v, "sort_key", o.SortKey)
	addString(v, "sort_order", string(o.SortOrder))
	return v
}

// ListWalletsOptions filters a wallet listing by environment.
type ListWalletsOptions struct {
	EnvironmentIDs []string
}

func (o *ListWalletsOptions) query() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	for _, id := range o.EnvironmentIDs {
		v.Add("environment_ids", id)
	}
	return v
}

func addString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func addInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}

func addTime(v url.Values, key string, value time.Time) {
	if !value.IsZero() {
		v.Set(key, value.UTC().Format(time.RFC3339))
	}
}
