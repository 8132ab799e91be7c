package wise

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbookResponse(t *testing.T, sheets map[string][][]string) *http.Response {
	t.Helper()
	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatal(err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatal(err)
			}
		}
		for i, row := range rows {
			for j, value := range row {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
				if err := f.SetCellValue(name, cell, value); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(buf),
		Header:     make(http.Header),
	}
}

func TestPriorityReportExactSheets(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/v2/valleyview/cp/report-center/report/get-report-file" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		return workbookResponse(t, map[string][][]string{
			"RG Outbound": {{"Order No.", "Pallet QTY"}, {"SO-1", "4"}},
			"Inbound":     {{"Receipt", "Pallets"}, {"R-1", "10"}, {"R-2", "2"}},
		}), nil
	})

	tables, err := client.PriorityReport(context.Background(), SheetAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 {
		t.Fatalf("len=%d", len(tables))
	}
	outbound := tables["RG Outbound"]
	if len(outbound.Header) != 2 || outbound.Header[0] != "Order No." {
		t.Fatalf("header = %v", outbound.Header)
	}
	if len(outbound.Rows) != 1 || outbound.Rows[0][0] != "SO-1" {
		t.Fatalf("rows = %v", outbound.Rows)
	}
	if len(tables["Inbound"].Rows) != 2 {
		t.Fatalf("inbound rows = %v", tables["Inbound"].Rows)
	}
}

func TestPriorityReportSubstringFallback(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return workbookResponse(t, map[string][][]string{
			"RGOutbound":  {{"Order No."}, {"SO-1"}},
			"InboundDock": {{"Receipt"}, {"R-1"}},
		}), nil
	})

	tables, err := client.PriorityReport(context.Background(), SheetAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 {
		t.Fatalf("len=%d", len(tables))
	}
	if _, ok := tables["RGOutbound"]; !ok {
		t.Fatalf("missing outbound fallback match: %v", tables)
	}
	if _, ok := tables["InboundDock"]; !ok {
		t.Fatalf("missing inbound fallback match: %v", tables)
	}
}

func TestPriorityReportSingleSheetDefault(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return workbookResponse(t, map[string][][]string{
			"Outbound Priority": {{"Order No."}, {"SO-9"}},
		}), nil
	})

	// Empty selector defaults to the outbound sheet, resolved by
	// substring since the exact name is absent.
	tables, err := client.PriorityReport(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	table, ok := tables["Outbound Priority"]
	if !ok {
		t.Fatalf("tables = %v", tables)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "SO-9" {
		t.Fatalf("rows = %v", table.Rows)
	}
}

func TestPriorityReportNoMatch(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return workbookResponse(t, map[string][][]string{
			"Summary": {{"n/a"}},
		}), nil
	})

	if _, err := client.PriorityReport(context.Background(), SheetAll); err == nil {
		t.Fatal("expected error when no sheets match")
	}
	if _, err := client.PriorityReport(context.Background(), "Inbound"); err == nil {
		t.Fatal("expected error for unmatched sheet name")
	}
}

func TestPriorityReportBadWorkbook(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("this is not a workbook")),
			Header:     make(http.Header),
		}, nil
	})

	if _, err := client.PriorityReport(context.Background(), SheetAll); err == nil {
		t.Fatal("expected error for unparsable payload")
	}
}
