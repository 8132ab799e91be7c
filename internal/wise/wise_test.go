package wise

import (
	"net/http"

	"wisefeed/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testClient(rt roundTripFunc) *Client {
	cfg, _ := config.Load()
	cfg.WiseAPIKey = "test"
	cfg.WiseAPIBaseURL = "https://example.test/v2/valleyview"
	cfg.WiseCompanyID = "ORG-1"
	cfg.WiseFacilityID = "F1"
	cfg.WiseUser = "tester"
	cfg.WisePageLimit = 1000
	cfg.WiseDaysAhead = 1

	client := NewClient(cfg)
	client.httpClient = &http.Client{Transport: rt}
	return client
}
