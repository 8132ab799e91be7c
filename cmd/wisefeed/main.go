package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"wisefeed/internal"
	"wisefeed/internal/config"
	"wisefeed/internal/notify"
	"wisefeed/internal/report"
	"wisefeed/internal/wise"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	must(cfg.Require("WISE_API_KEY", cfg.WiseAPIKey))
	customerIDs, err := wise.ParseCustomerIDs(cfg.CustomerIDs)
	must(err)

	client := wise.NewClient(cfg)
	ctx := context.Background()

	cmd := os.Args[1]
	switch cmd {
	case "receipts:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		asJSON := fs.Bool("json", false, "dump receipts as JSON")
		_ = fs.Parse(os.Args[2:])
		receipts, err := client.InboundReceipts(ctx, customerIDs)
		must(err)
		if *asJSON {
			dumpJSON(receipts)
		}
	case "equipment:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		asJSON := fs.Bool("json", false, "dump equipment records as JSON")
		_ = fs.Parse(os.Args[2:])
		records, failures := client.EquipmentDetails(ctx, customerIDs)
		reportFailures(failures)
		if *asJSON {
			dumpJSON(records)
		}
	case "orders:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		set := fs.String("set", "open", "open|picked")
		asJSON := fs.Bool("json", false, "dump order records as JSON")
		_ = fs.Parse(os.Args[2:])

		var records []internal.OrderRecord
		var failures []internal.CustomerFailure
		switch strings.ToLower(strings.TrimSpace(*set)) {
		case "open":
			records, failures = client.OpenOutboundOrders(ctx, customerIDs)
		case "picked":
			records, failures = client.PickedOutboundOrders(ctx, customerIDs)
		default:
			must(fmt.Errorf("unsupported order set: %s", *set))
		}
		reportFailures(failures)
		if *asJSON {
			dumpJSON(records)
		}
	case "priority:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sheet := fs.String("sheet", wise.SheetAll, "all or a sheet name")
		_ = fs.Parse(os.Args[2:])
		tables, err := client.PriorityReport(ctx, *sheet)
		must(err)
		for name, table := range tables {
			fmt.Printf("sheet %q: %d rows\n", name, len(table.Rows))
		}
	case "snapshot:run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		doNotify := fs.Bool("notify", false, "email the run summary")
		_ = fs.Parse(os.Args[2:])
		must(runSnapshot(ctx, cfg, client, customerIDs, *out, *doNotify))
	default:
		usage()
		os.Exit(1)
	}
}

func runSnapshot(ctx context.Context, cfg config.Config, client *wise.Client, customerIDs []string, out string, doNotify bool) error {
	runID := uuid.NewString()
	fmt.Printf("snapshot run %s started\n", runID)

	receipts, err := client.InboundReceipts(ctx, customerIDs)
	if err != nil {
		// A dead receipts endpoint should not block the order report.
		fmt.Printf("inbound receipts unavailable: %v\n", err)
	}

	equipment, equipmentFailures := client.EquipmentDetails(ctx, customerIDs)
	openOrders, openFailures := client.OpenOutboundOrders(ctx, customerIDs)
	pickedOrders, pickedFailures := client.PickedOutboundOrders(ctx, customerIDs)

	failures := append(append(equipmentFailures, openFailures...), pickedFailures...)
	reportFailures(failures)

	if strings.TrimSpace(out) == "" {
		name := fmt.Sprintf("wisefeed-%s-%s.xlsx", time.Now().Format("20060102"), runID[:8])
		out = filepath.Join(cfg.OutputDir, name)
	}

	snapshot := report.Snapshot{
		OpenOrders:   openOrders,
		PickedOrders: pickedOrders,
		Equipment:    equipment,
	}
	if err := report.WriteSnapshotXLSX(snapshot, out); err != nil {
		return err
	}
	fmt.Printf("snapshot run %s done receipts=%d equipment=%d open=%d picked=%d failures=%d output=%s\n",
		runID, len(receipts), len(equipment), len(openOrders), len(pickedOrders), len(failures), out)

	if doNotify {
		subject := fmt.Sprintf("wisefeed snapshot %s", time.Now().Format("2006-01-02"))
		body := summaryBody(runID, len(receipts), snapshot, failures, out)
		if err := notify.SendSummary(cfg, subject, body); err != nil {
			fmt.Printf("notification not sent: %v\n", err)
		}
	}
	return nil
}

func summaryBody(runID string, receiptCount int, snapshot report.Snapshot, failures []internal.CustomerFailure, out string) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Run %s\n\n", runID)
	fmt.Fprintf(&b, "Inbound receipts: %d\n", receiptCount)
	fmt.Fprintf(&b, "Equipment with receipts: %d\n", len(snapshot.Equipment))
	fmt.Fprintf(&b, "Open outbound orders: %d\n", len(snapshot.OpenOrders))
	fmt.Fprintf(&b, "Picked outbound orders: %d\n", len(snapshot.PickedOrders))
	fmt.Fprintf(&b, "Workbook: %s\n", out)
	if len(failures) > 0 {
		fmt.Fprintf(&b, "\nFailed requests:\n")
		for _, f := range failures {
			fmt.Fprintf(&b, "  %s: %v\n", f.CustomerID, f.Err)
		}
	}
	return b.String()
}

func reportFailures(failures []internal.CustomerFailure) {
	for _, f := range failures {
		fmt.Printf("customer %s: request failed: %v\n", f.CustomerID, f.Err)
	}
}

func dumpJSON(v any) {
	blob, err := json.MarshalIndent(v, "", "  ")
	must(err)
	fmt.Println(string(blob))
}

func usage() {
	fmt.Println("usage: wisefeed <command>")
	fmt.Println("commands:")
	fmt.Println("  receipts:fetch [--json]")
	fmt.Println("  equipment:fetch [--json]")
	fmt.Println("  orders:fetch --set=open|picked [--json]")
	fmt.Println("  priority:fetch [--sheet=all|<name>]")
	fmt.Println("  snapshot:run [--out=./out/snapshot.xlsx] [--notify]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
