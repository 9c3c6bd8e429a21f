package voltage

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLineOfCredit(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/org1/lines_of_credit/line1/summary", r.URL.Path)
		writeJSON(t, w, http.StatusOK, LineOfCredit{
			ID:             "line1",
			OrganizationID: "org1",
			Limit:          500_000_000,
			Allocated:      100_000_000,
			Currency:       "btc",
			Status:         "secured",
		})
	}))

	line, err := client.GetLineOfCredit(context.Background(), "org1", "line1")
	require.NoError(t, err)
	assert.Equal(t, int64(500_000_000), line.Limit)
	assert.Equal(t, int64(100_000_000), line.Allocated)
	assert.Equal(t, "secured", line.Status)
}

func TestListLinesOfCredit(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/org1/lines_of_credit", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []LineOfCredit{{ID: "line1"}, {ID: "line2"}})
	}))

	lines, err := client.ListLinesOfCredit(context.Background(), "org1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestLineOfCreditValidation(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.GetLineOfCredit(context.Background(), "org1", "")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"line_id"}, verr.Missing)
	assert.Equal(t, 0, calls)
}
