package dieta

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/provider/openfoodfacts"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/provider/usda"
	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var (
	lookupLimit    int
	lookupJSON     bool
	lookupSave     bool
	lookupProvider string
)

// lookupResult is the provider-independent row printed and saved by the
// lookup command. Both providers report nutrients per 100g.
type lookupResult struct {
	Description string  `json:"description"`
	Brand       string  `json:"brand,omitempty"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Search foods on OpenFoodFacts or USDA FoodData Central",
	Long:  "Searches a remote food database and prints per-100g profiles. Nutrients missing from the source are reported as zero. With --save, the first result is imported into the local food database.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			results, err := searchProvider(cmd.Context(), sqldb, lookupProvider, args[0], lookupLimit)
			if err != nil {
				return err
			}

			if lookupJSON {
				b, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("encode lookup results: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "NAME\tBRAND\tKCAL/100G\tP\tC\tF")
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
						r.Description, r.Brand, r.Calories, r.ProteinG, r.CarbsG, r.FatG)
				}
			}

			if !lookupSave {
				return nil
			}
			first := results[0]
			id, err := service.CreateFood(sqldb, service.CreateFoodInput{
				Name:     first.Description,
				Calories: first.Calories,
				ProteinG: first.ProteinG,
				CarbsG:   first.CarbsG,
				FatG:     first.FatG,
				Source:   lookupProvider,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as food %d\n", first.Description, id)
			return nil
		})
	},
}

func searchProvider(ctx context.Context, sqldb *sql.DB, provider, query string, limit int) ([]lookupResult, error) {
	switch provider {
	case "openfoodfacts":
		client := &openfoodfacts.Client{}
		if baseURL, ok, err := service.GetConfig(sqldb, service.ConfigLookupBaseURL); err != nil {
			return nil, err
		} else if ok {
			client.BaseURL = baseURL
		}
		found, err := client.SearchFoods(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		out := make([]lookupResult, len(found))
		for i, f := range found {
			out[i] = lookupResult{
				Description: f.Description,
				Brand:       f.Brand,
				Calories:    f.Calories,
				ProteinG:    f.ProteinG,
				CarbsG:      f.CarbsG,
				FatG:        f.FatG,
			}
		}
		return out, nil
	case "usda":
		apiKey, ok, err := service.GetConfig(sqldb, service.ConfigUSDAAPIKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("usda lookups need an API key; run: dieta config set --usda-api-key <key>")
		}
		client := &usda.Client{APIKey: apiKey}
		found, err := client.SearchFoods(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		out := make([]lookupResult, len(found))
		for i, f := range found {
			out[i] = lookupResult{
				Description: f.Description,
				Brand:       f.Brand,
				Calories:    f.Calories,
				ProteinG:    f.ProteinG,
				CarbsG:      f.CarbsG,
				FatG:        f.FatG,
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown lookup provider %q (expected openfoodfacts or usda)", provider)
	}
}

func init() {
	lookupCmd.Flags().IntVar(&lookupLimit, "limit", 10, "Maximum results")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print results as JSON")
	lookupCmd.Flags().BoolVar(&lookupSave, "save", false, "Import the first result into the local food database")
	lookupCmd.Flags().StringVar(&lookupProvider, "provider", "openfoodfacts", "Lookup provider (openfoodfacts or usda)")
	rootCmd.AddCommand(lookupCmd)
}
