package wise

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"wisefeed/internal"
)

const (
	outboundSheetName = "RG Outbound"
	inboundSheetName  = "Inbound"

	// SheetAll selects both the outbound and inbound tabs.
	SheetAll = "all"
)

// PriorityReport downloads the priority report workbook and extracts
// the requested sheet, or both the outbound and inbound sheets when
// selector is SheetAll. Report tabs get renamed by hand on the
// platform side now and then, so exact-name misses fall back to a
// case-insensitive substring match on "outbound"/"inbound".
func (c *Client) PriorityReport(ctx context.Context, selector string) (map[string]internal.SheetTable, error) {
	payload := map[string]any{
		"reportService":  "priorityReport",
		"reportFunction": "buildPriorityReport",
	}

	fmt.Println("fetching priority report file...")
	body, err := c.post(ctx, "cp/report-center/report/get-report-file", payload)
	if err != nil {
		return nil, fmt.Errorf("priority report download: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("priority report is not a readable workbook: %w", err)
	}
	defer f.Close()

	available := f.GetSheetList()
	fmt.Printf("available sheets: %v\n", available)

	if selector == SheetAll {
		outbound := resolveSheet(available, outboundSheetName)
		inbound := resolveSheet(available, inboundSheetName)
		if outbound == "" || inbound == "" {
			return nil, fmt.Errorf("could not find outbound and inbound sheets in %v", available)
		}
		out := map[string]internal.SheetTable{}
		for _, name := range []string{outbound, inbound} {
			table, err := readSheet(f, name)
			if err != nil {
				return nil, err
			}
			out[name] = table
		}
		return out, nil
	}

	target := selector
	if strings.TrimSpace(target) == "" {
		target = outboundSheetName
	}
	resolved := resolveSheet(available, target)
	if resolved == "" {
		return nil, fmt.Errorf("could not find sheet %q in %v", target, available)
	}
	table, err := readSheet(f, resolved)
	if err != nil {
		return nil, err
	}
	return map[string]internal.SheetTable{resolved: table}, nil
}

// resolveSheet returns the exact sheet when present, otherwise the
// first sheet whose name contains "outbound" or "inbound" (whichever
// term the requested name carries), ignoring case. Empty string means
// no match.
func resolveSheet(available []string, requested string) string {
	for _, s := range available {
		if s == requested {
			return s
		}
	}

	term := "inbound"
	if strings.Contains(strings.ToLower(requested), "outbound") {
		term = "outbound"
	}
	for _, s := range available {
		if strings.Contains(strings.ToLower(s), term) {
			return s
		}
	}
	return ""
}

func readSheet(f *excelize.File, name string) (internal.SheetTable, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return internal.SheetTable{}, fmt.Errorf("read sheet %q: %w", name, err)
	}

	table := internal.SheetTable{Name: name}
	if len(rows) > 0 {
		table.Header = rows[0]
		table.Rows = rows[1:]
	}
	return table, nil
}
