package wise

import (
	"context"
	"fmt"

	"wisefeed/internal"
)

var receiptStatuses = []string{"Appointment Made", "In Yard"}

type receiptSearchResponse struct {
	Receipts []internal.Receipt `json:"receipts"`
}

// InboundReceipts searches receipts with appointments inside the
// configured day window, across the whole customer list in one call.
// The receipt entries are passed through untouched. Only the first
// page is fetched; anything past the page limit is left behind.
func (c *Client) InboundReceipts(ctx context.Context, customerIDs []string) ([]internal.Receipt, error) {
	window := NewDateWindow(c.cfg.WiseDaysAhead)

	payload := map[string]any{
		"appointmentTimeFrom": wireTime(window.Start),
		"appointmentTimeTo":   wireTime(window.End),
		"customerIds":         customerIDs,
		"paging":              c.paging(),
		"statuses":            receiptStatuses,
	}

	fmt.Println("fetching inbound receipts...")
	var resp receiptSearchResponse
	if err := c.postJSON(ctx, "bam/inbound/receipt/search-by-paging", payload, &resp); err != nil {
		return nil, fmt.Errorf("inbound receipt search: %w", err)
	}

	fmt.Printf("retrieved %d inbound receipts\n", len(resp.Receipts))
	return resp.Receipts, nil
}
