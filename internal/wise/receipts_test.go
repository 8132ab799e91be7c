package wise

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestInboundReceiptsPassthrough(t *testing.T) {
	var sent map[string]any
	client := testClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/v2/valleyview/bam/inbound/receipt/search-by-paging" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		blob, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(blob, &sent); err != nil {
			t.Fatal(err)
		}

		body := `{"receipts":[{"receiptId":"R-1","oddField":{"nested":true}},{"receiptId":"R-2"}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	receipts, err := client.InboundReceipts(context.Background(), []string{"ORG-A", "ORG-B"})
	if err != nil {
		t.Fatal(err)
	}
	if len(receipts) != 2 {
		t.Fatalf("len=%d", len(receipts))
	}
	// Passthrough: unmapped structure survives intact.
	if _, ok := receipts[0]["oddField"]; !ok {
		t.Fatalf("receipt lost fields: %v", receipts[0])
	}

	statuses, _ := sent["statuses"].([]any)
	if len(statuses) != 2 || statuses[0] != "Appointment Made" || statuses[1] != "In Yard" {
		t.Fatalf("statuses = %v", sent["statuses"])
	}
	ids, _ := sent["customerIds"].([]any)
	if len(ids) != 2 {
		t.Fatalf("customerIds = %v", sent["customerIds"])
	}
	from, _ := sent["appointmentTimeFrom"].(string)
	to, _ := sent["appointmentTimeTo"].(string)
	if !strings.HasSuffix(from, "T00:00:00") || !strings.HasSuffix(to, "T23:59:59") {
		t.Fatalf("window = %q .. %q", from, to)
	}
	paging, _ := sent["paging"].(map[string]any)
	if paging["limit"] != 1000.0 || paging["pageNo"] != 1.0 {
		t.Fatalf("paging = %v", paging)
	}
}

func TestInboundReceiptsErrorIsExplicit(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
			Header:     make(http.Header),
		}, nil
	})

	receipts, err := client.InboundReceipts(context.Background(), []string{"ORG-A"})
	if err == nil {
		t.Fatal("expected error")
	}
	if receipts != nil {
		t.Fatalf("receipts = %v", receipts)
	}
}
