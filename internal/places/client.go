package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client is a thin wrapper over the places HTTP API: find a place by free
// text, then fetch its opening hours.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NewClientWithBaseURL points the client at a different API host, used by
// tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Place is one find-place candidate.
type Place struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

type findPlaceResponse struct {
	Candidates []Place `json:"candidates"`
}

// PeriodTime is a day-local time in "hhmm" form, e.g. "2130".
type PeriodTime struct {
	Time string `json:"time"`
}

// Period is one open/close interval of a weekly schedule.
type Period struct {
	Open  *PeriodTime `json:"open"`
	Close *PeriodTime `json:"close"`
}

// OpeningHours is a place's weekly schedule; Periods is indexed by weekday
// starting at Sunday.
type OpeningHours struct {
	OpenNow bool     `json:"open_now"`
	Periods []Period `json:"periods"`
}

type placeDetailsResponse struct {
	Result struct {
		OpeningHours *OpeningHours `json:"opening_hours"`
	} `json:"result"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places api returned status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

// FindPlace resolves a free-text query to the best-matching place.
func (c *Client) FindPlace(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name")

	var resp findPlaceResponse
	if err := c.get(ctx, "/findplacefromtext/json", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].PlaceID == "" {
		return nil, fmt.Errorf("no place found for %q", query)
	}
	return &resp.Candidates[0], nil
}

// GetOpeningHours fetches the weekly opening hours for a place.
func (c *Client) GetOpeningHours(ctx context.Context, placeID string) (*OpeningHours, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "opening_hours/periods,opening_hours/open_now")

	var resp placeDetailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result.OpeningHours == nil {
		return nil, fmt.Errorf("no opening hours for place %s", placeID)
	}
	return resp.Result.OpeningHours, nil
}
