package usda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchFoodsParsesUSDAResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "demo" {
			t.Errorf("unexpected api key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "foods": [
    {
      "fdcId": 12345,
      "description": "Chicken breast, grilled",
      "foodNutrients": [
        {"nutrientName": "Energy", "unitName": "KCAL", "value": 148},
        {"nutrientName": "Energy", "unitName": "kJ", "value": 619},
        {"nutrientName": "Protein", "unitName": "G", "value": 32.8},
        {"nutrientName": "Carbohydrate, by difference", "unitName": "G", "value": 0},
        {"nutrientName": "Total lipid (fat)", "unitName": "G", "value": 1.8}
      ]
    },
    {
      "fdcId": 67890,
      "description": "Chicken Strips",
      "brandOwner": "Test Brand",
      "foodNutrients": [
        {"nutrientName": "Energy", "unitName": "KCAL", "value": 210}
      ]
    }
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{APIKey: "demo", BaseURL: ts.URL, HTTPClient: ts.Client()}
	results, err := c.SearchFoods(context.Background(), "chicken breast", 10)
	if err != nil {
		t.Fatalf("search foods: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0]
	if first.FDCID != 12345 {
		t.Fatalf("expected fdc id 12345, got %d", first.FDCID)
	}
	// The kJ energy row must not overwrite the kcal one.
	if first.Calories != 148 || first.ProteinG != 32.8 || first.FatG != 1.8 {
		t.Fatalf("unexpected nutrients: %+v", first)
	}
	if second := results[1]; second.Brand != "Test Brand" || second.ProteinG != 0 {
		t.Fatalf("unexpected second result: %+v", second)
	}
}

func TestSearchFoodsRequiresAPIKey(t *testing.T) {
	t.Parallel()

	c := &Client{}
	if _, err := c.SearchFoods(context.Background(), "rice", 5); err == nil {
		t.Fatalf("expected missing api key error")
	}
}
