package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"wisefeed/internal"
)

// Snapshot is one full fetch cycle's output, ready to export.
type Snapshot struct {
	OpenOrders   []internal.OrderRecord
	PickedOrders []internal.OrderRecord
	Equipment    []internal.EquipmentRecord
}

var orderHeaders = []string{
	"order_no", "status", "customer", "ship_to", "state",
	"reference_no", "target_completion_date", "pallet_qty", "order_qty", "picking_type",
}

var equipmentHeaders = []string{
	"equipment_no", "receipt_ids", "status", "location", "customer_id",
}

// WriteSnapshotXLSX writes the snapshot as a three-sheet workbook.
func WriteSnapshotXLSX(snapshot Snapshot, outputPath string) error {
	f := excelize.NewFile()

	openSheet := f.GetSheetName(0)
	if err := f.SetSheetName(openSheet, "Open Orders"); err != nil {
		return err
	}
	if err := writeOrderSheet(f, "Open Orders", snapshot.OpenOrders); err != nil {
		return err
	}

	if _, err := f.NewSheet("Picked Orders"); err != nil {
		return err
	}
	if err := writeOrderSheet(f, "Picked Orders", snapshot.PickedOrders); err != nil {
		return err
	}

	if _, err := f.NewSheet("Equipment"); err != nil {
		return err
	}
	if err := writeEquipmentSheet(f, "Equipment", snapshot.Equipment); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeOrderSheet(f *excelize.File, sheet string, orders []internal.OrderRecord) error {
	if err := writeHeaderRow(f, sheet, orderHeaders); err != nil {
		return err
	}
	for i, order := range orders {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, order.OrderNo)
		set(2, order.Status)
		set(3, order.Customer)
		set(4, order.ShipTo)
		set(5, order.State)
		set(6, order.ReferenceNo)
		set(7, order.TargetCompletionDate)
		set(8, order.PalletQty)
		set(9, order.OrderQty)
		set(10, order.PickingType)
	}
	return nil
}

func writeEquipmentSheet(f *excelize.File, sheet string, equipment []internal.EquipmentRecord) error {
	if err := writeHeaderRow(f, sheet, equipmentHeaders); err != nil {
		return err
	}
	for i, eq := range equipment {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, eq.EquipmentNo)
		set(2, strings.Join(eq.ReceiptIDs, ", "))
		set(3, eq.Status)
		set(4, eq.Location)
		set(5, eq.CustomerID)
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}
