package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// ReadonlyScope grants read access to spreadsheet values.
	ReadonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

	defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
)

// Grid is the raw rectangular cell data of a sheet range: row 0 is the
// header row, the rest are data rows. Rows may be ragged; missing trailing
// cells are treated as absent.
type Grid [][]string

// Client fetches spreadsheet values over the JWT-bearer authenticated
// channel. Safe for concurrent use.
type Client struct {
	// BaseURL is the spreadsheet values endpoint, overridable for tests.
	BaseURL string
	Scope   string

	http  *http.Client
	cache *tokenCache
	now   func() time.Time
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Scope:   ReadonlyScope,
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   newTokenCache(),
		now:     time.Now,
	}
}

// FetchValues reads the given range of a spreadsheet as a Grid. The service
// identity is loaded from the environment on every call; bearer tokens are
// reused until close to expiry. An empty or absent values field yields an
// empty Grid, not an error.
func (c *Client) FetchValues(ctx context.Context, sheetID, rangeName string) (Grid, error) {
	id, err := LoadIdentity()
	if err != nil {
		return nil, err
	}

	token, err := c.token(ctx, id)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s", c.BaseURL, url.PathEscape(sheetID), url.PathEscape(rangeName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SheetFetchError{Status: resp.StatusCode}
	}

	var parsed struct {
		Values [][]any `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}

	return gridFromValues(parsed.Values), nil
}

func (c *Client) token(ctx context.Context, id *ServiceIdentity) (string, error) {
	key := id.ClientEmail + "|" + c.Scope
	now := c.now()
	if token, ok := c.cache.get(key, now); ok {
		return token, nil
	}

	assertion, err := SignAssertion(id, c.Scope, now)
	if err != nil {
		return "", err
	}
	token, err := exchangeToken(ctx, c.http, id.TokenURI, assertion)
	if err != nil {
		return "", err
	}

	c.cache.put(key, token, now.Add(assertionLifetime))
	return token, nil
}

// gridFromValues stringifies upstream cells; the values endpoint may return
// numbers and booleans alongside strings.
func gridFromValues(values [][]any) Grid {
	grid := make(Grid, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case nil:
				cells[j] = ""
			case string:
				cells[j] = v
			case float64:
				cells[j] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				cells[j] = strconv.FormatBool(v)
			default:
				cells[j] = fmt.Sprint(v)
			}
		}
		grid[i] = cells
	}
	return grid
}
