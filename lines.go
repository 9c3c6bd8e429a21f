package voltage

import (
	"context"
	"fmt"
	"net/http"
)

// GetLineOfCredit returns the summary of one line of credit: its limit, how
// much of it wallets have allocated, and its collateral status.
func (c *Client) GetLineOfCredit(ctx context.Context, organizationID, lineID string) (*LineOfCredit, error) {
	if err := requireIDs("organization_id", organizationID, "line_id", lineID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/lines_of_credit/%s/summary", organizationID, lineID)
	var line LineOfCredit
	if err := c.do(ctx, http.MethodGet, path, nil, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (c *Client) ListLinesOfCredit(ctx context.Context, organizationID string) ([]LineOfCredit, error) {
	if err := requireIDs("organization_id", organizationID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/lines_of_credit", organizationID)
	var lines []LineOfCredit
	if err := c.do(ctx, http.MethodGet, path, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
