// Package seed populates the exoplanet catalog from the NASA
// Exoplanet Archive.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// archiveQuery selects the confirmed planets nearest to Earth that
// have the measurements the catalog needs.
const archiveQuery = "select pl_name,sy_dist,pl_eqt,pl_masse,pl_rade,disc_year " +
	"from ps where default_flag=1 and sy_dist is not null and pl_rade is not null " +
	"order by sy_dist asc"

// Record is one raw archive row. Distance is in parsecs; mass and
// radius are in Earth units; temperature is in Kelvin. Pointer fields
// are nil when the archive has no measurement.
type Record struct {
	Name          string
	DistParsecs   float64
	Temperature   *float64
	Mass          *float64
	Radius        *float64
	DiscoveryYear *int
}

// Client fetches planet data from the archive's TAP endpoint as CSV.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an archive client for the given TAP endpoint.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchNearest returns up to limit archive records, nearest first.
func (c *Client) FetchNearest(ctx context.Context, limit int) ([]Record, error) {
	endpoint := c.baseURL + "?query=" + url.QueryEscape(archiveQuery) + "&format=csv"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archive data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive returned status %d", resp.StatusCode)
	}

	records, err := ParseCSV(resp.Body, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse archive CSV: %w", err)
	}
	return records, nil
}

// ParseCSV reads archive CSV rows up to limit (no limit when <= 0).
// Rows without a name or distance are skipped; other missing fields
// become nil.
func ParseCSV(r io.Reader, limit int) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"pl_name", "sy_dist"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header missing column %q", required)
		}
	}

	var records []Record
	for {
		if limit > 0 && len(records) >= limit {
			break
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name := field(row, columns, "pl_name")
		dist := parseFloat(field(row, columns, "sy_dist"))
		if name == "" || dist == nil {
			continue
		}

		records = append(records, Record{
			Name:          name,
			DistParsecs:   *dist,
			Temperature:   parseFloat(field(row, columns, "pl_eqt")),
			Mass:          parseFloat(field(row, columns, "pl_masse")),
			Radius:        parseFloat(field(row, columns, "pl_rade")),
			DiscoveryYear: parseInt(field(row, columns, "disc_year")),
		})
	}

	return records, nil
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
