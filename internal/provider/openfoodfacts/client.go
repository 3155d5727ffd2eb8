package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// FoodLookup is one search result mapped to a per-100g nutrient profile.
// Nutrients absent from the source are zero-filled.
type FoodLookup struct {
	Description string
	Brand       string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// SearchFoods queries the OpenFoodFacts text search endpoint and returns
// products with a usable name, nutrients normalized to per-100g values.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodLookup, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 10
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		base,
		url.QueryEscape(strings.TrimSpace(query)),
		limit,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts search request: %w", err)
	}
	req.Header.Set("User-Agent", "dieta-cli/1.0 (+https://github.com/FelipeFrancca/dieta-facil-sub000)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts search request failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}

	out := make([]FoodLookup, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		out = append(out, FoodLookup{
			Description: strings.TrimSpace(p.ProductName),
			Brand:       strings.TrimSpace(p.Brands),
			Calories:    nutrientValue(p.Nutriments, "energy-kcal"),
			ProteinG:    nutrientValue(p.Nutriments, "proteins"),
			CarbsG:      nutrientValue(p.Nutriments, "carbohydrates"),
			FatG:        nutrientValue(p.Nutriments, "fat"),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no openfoodfacts product found for query %q", query)
	}
	return out, nil
}

func nutrientValue(n map[string]any, base string) float64 {
	if v, ok := parseFloatAny(n[base+"_100g"]); ok {
		return v
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
