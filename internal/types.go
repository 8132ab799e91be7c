package internal

import "time"

// DateWindow covers one calendar day in the host clock's zone.
type DateWindow struct {
	Start     time.Time
	End       time.Time
	TargetDay time.Time
}

// Receipt is passed through exactly as the inbound-receipt endpoint
// returns it; no field mapping is applied.
type Receipt map[string]any

type OrderRecord struct {
	OrderNo              string  `json:"order_no"`
	Status               string  `json:"status"`
	Customer             string  `json:"customer"`
	ShipTo               string  `json:"ship_to"`
	State                string  `json:"state"`
	ReferenceNo          string  `json:"reference_no"`
	TargetCompletionDate string  `json:"target_completion_date"`
	PalletQty            float64 `json:"pallet_qty"`
	OrderQty             float64 `json:"order_qty"`
	PickingType          string  `json:"picking_type,omitempty"`
}

type EquipmentRecord struct {
	EquipmentNo string   `json:"equipment_no"`
	ReceiptIDs  []string `json:"receipt_ids"`
	Status      string   `json:"status"`
	Location    string   `json:"location"`
	CustomerID  string   `json:"customer_id"`
}

// SheetTable is one worksheet of the priority report, header row split
// off from the data rows.
type SheetTable struct {
	Name   string
	Header []string
	Rows   [][]string
}

// CustomerFailure records a per-customer request that failed inside a
// multi-customer loop. The loop keeps going; callers decide what a
// failure means.
type CustomerFailure struct {
	CustomerID string
	Err        error
}
