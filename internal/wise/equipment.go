package wise

import (
	"context"
	"encoding/json"
	"fmt"

	"wisefeed/internal"
	"wisefeed/internal/util"
)

var equipmentStatuses = []string{"Loaded", "Full to Offload"}

// EquipmentDetails queries loaded container equipment per customer,
// sequentially, and keeps only entries that reference at least one
// receipt. A customer whose request fails or returns a non-list body
// is recorded as a failure and skipped; the remaining customers are
// still queried.
func (c *Client) EquipmentDetails(ctx context.Context, customerIDs []string) ([]internal.EquipmentRecord, []internal.CustomerFailure) {
	records := make([]internal.EquipmentRecord, 0)
	failures := make([]internal.CustomerFailure, 0)

	for _, customerID := range customerIDs {
		payload := map[string]any{
			"customerId":      customerID,
			"type":            "Container",
			"equipmentStatus": "Full",
			"statuses":        equipmentStatuses,
			"paging":          c.paging(),
		}

		fmt.Printf("fetching equipment details for customer %s...\n", customerID)
		body, err := c.post(ctx, "bam/wms-app/csr/equipmentDetail", payload)
		if err != nil {
			fmt.Printf("equipment details failed for %s: %v\n", customerID, err)
			failures = append(failures, internal.CustomerFailure{CustomerID: customerID, Err: err})
			continue
		}

		var entries []map[string]any
		if err := json.Unmarshal(body, &entries); err != nil {
			err = fmt.Errorf("expected list-shaped equipment response: %w", err)
			fmt.Printf("equipment details failed for %s: %v\n", customerID, err)
			failures = append(failures, internal.CustomerFailure{CustomerID: customerID, Err: err})
			continue
		}

		for _, entry := range entries {
			receiptIDs := util.ToStringSlice(entry["receiptIds"])
			if len(receiptIDs) == 0 {
				continue
			}
			records = append(records, internal.EquipmentRecord{
				EquipmentNo: util.StringOr(entry["equipmentNo"], ""),
				ReceiptIDs:  receiptIDs,
				Status:      util.StringOr(entry["status"], ""),
				Location:    util.StringOr(entry["currentLocation"], ""),
				CustomerID:  customerID,
			})
		}
	}

	fmt.Printf("processed %d equipment details with receipt ids across all customers\n", len(records))
	return records, failures
}
