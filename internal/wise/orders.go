package wise

import (
	"context"
	"fmt"

	"wisefeed/internal"
	"wisefeed/internal/util"
)

var (
	openOrderStatuses   = []string{"Imported", "Open", "Planning", "Planned", "Committed"}
	pickedOrderStatuses = []string{"Picked", "Packed", "Staged"}
)

type orderSearchResponse struct {
	Results struct {
		Data []map[string]any `json:"data"`
	} `json:"results"`
}

// OpenOutboundOrders fetches not-yet-picked regular orders due inside
// the day window, one request per customer. Records carry the picking
// type so downstream reporting can split floor and bendi picks.
func (c *Client) OpenOutboundOrders(ctx context.Context, customerIDs []string) ([]internal.OrderRecord, []internal.CustomerFailure) {
	return c.outboundOrders(ctx, customerIDs, "outbound orders", openOrderStatuses, true)
}

// PickedOutboundOrders fetches orders already picked, packed or staged.
func (c *Client) PickedOutboundOrders(ctx context.Context, customerIDs []string) ([]internal.OrderRecord, []internal.CustomerFailure) {
	return c.outboundOrders(ctx, customerIDs, "picked outbound orders", pickedOrderStatuses, false)
}

func (c *Client) outboundOrders(ctx context.Context, customerIDs []string, label string, statuses []string, withPickingType bool) ([]internal.OrderRecord, []internal.CustomerFailure) {
	window := NewDateWindow(c.cfg.WiseDaysAhead)

	records := make([]internal.OrderRecord, 0)
	failures := make([]internal.CustomerFailure, 0)

	for _, customerID := range customerIDs {
		payload := map[string]any{
			"statuses":   statuses,
			"customerId": customerID,
			"orderTypes": []string{"Regular Order"},
			"paging":     c.paging(),
		}

		// Window field per the customer policy table: some accounts
		// schedule by appointment time, the rest by target completion.
		switch c.overrides[customerID] {
		case WindowAppointment:
			payload["appointmentTimeFrom"] = wireTime(window.Start)
			payload["appointmentTimeTo"] = wireTime(window.End)
		default:
			payload["targetCompletionDateFrom"] = wireTime(window.Start)
			payload["targetCompletionDateTo"] = wireTime(window.End)
		}

		fmt.Printf("fetching %s for customer %s...\n", label, customerID)
		var resp orderSearchResponse
		if err := c.postJSON(ctx, "report-center/outbound/order-status-report/search-by-paging", payload, &resp); err != nil {
			fmt.Printf("%s failed for %s: %v\n", label, customerID, err)
			failures = append(failures, internal.CustomerFailure{CustomerID: customerID, Err: err})
			continue
		}

		for _, raw := range resp.Results.Data {
			records = append(records, normalizeOrder(raw, customerID, withPickingType))
		}
	}

	fmt.Printf("retrieved %d %s across all customers\n", len(records), label)
	return records, failures
}

// normalizeOrder flattens one raw report row. Quantity cells arrive as
// numbers or strings and sometimes as garbage; they coerce to 0 rather
// than dropping the row. The customer column is the account we queried
// with, not whatever the report echoes back.
func normalizeOrder(raw map[string]any, customerID string, withPickingType bool) internal.OrderRecord {
	record := internal.OrderRecord{
		OrderNo:              util.StringOr(raw["Order No."], ""),
		Status:               util.StringOr(raw["Order Status"], "Unknown"),
		Customer:             customerID,
		ShipTo:               util.StringOr(raw["Ship to"], "Unknown"),
		State:                util.StringOr(raw["State"], "Unknown"),
		ReferenceNo:          util.StringOr(raw["Reference Number"], ""),
		TargetCompletionDate: util.StringOr(raw["Target Completion Date"], ""),
		PalletQty:            util.ToFloat(raw["Pallet QTY"]),
		OrderQty:             util.ToFloat(raw["Order QTY"]),
	}
	if withPickingType {
		record.PickingType = util.StringOr(raw["Picking Type"], "")
	}
	return record
}
