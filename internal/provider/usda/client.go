package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

// FoodLookup is one FoodData Central search result mapped to a per-100g
// nutrient profile. Nutrients absent from the source are zero-filled.
type FoodLookup struct {
	Description string
	Brand       string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	FDCID       int64
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	BrandOwner    string         `json:"brandOwner"`
	FoodNutrients []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// SearchFoods queries the FoodData Central text search endpoint. Search
// responses report nutrients per 100g, which matches the local food model
// directly.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodLookup, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 10
	}

	reqBody := map[string]any{
		"query":    strings.TrimSpace(query),
		"dataType": []string{"Foundation", "SR Legacy", "Branded"},
		"pageSize": limit,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	url := fmt.Sprintf("%s/fdc/v1/foods/search?api_key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}

	out := make([]FoodLookup, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		if strings.TrimSpace(f.Description) == "" {
			continue
		}
		item := FoodLookup{
			Description: strings.TrimSpace(f.Description),
			Brand:       strings.TrimSpace(f.BrandOwner),
			FDCID:       f.FDCID,
		}
		for _, n := range f.FoodNutrients {
			switch strings.ToLower(strings.TrimSpace(n.NutrientName)) {
			case "energy":
				if strings.EqualFold(n.UnitName, "kcal") {
					item.Calories = n.Value
				}
			case "protein":
				item.ProteinG = n.Value
			case "carbohydrate, by difference":
				item.CarbsG = n.Value
			case "total lipid (fat)":
				item.FatG = n.Value
			}
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no USDA food found for query %q", query)
	}
	return out, nil
}
