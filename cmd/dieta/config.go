package dieta

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FelipeFrancca/dieta-facil-sub000/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dieta local configuration",
}

var (
	cfgLookupBaseURL string
	cfgDefaultPlan   string
	cfgUSDAAPIKey    string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("lookup-base-url") {
				if err := service.SetConfig(sqldb, service.ConfigLookupBaseURL, cfgLookupBaseURL); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-plan") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultPlan, cfgDefaultPlan); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("usda-api-key") {
				if err := service.SetConfig(sqldb, service.ConfigUSDAAPIKey, cfgUSDAAPIKey); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	configSetCmd.Flags().StringVar(&cfgLookupBaseURL, "lookup-base-url", "", "Override the food lookup API base URL")
	configSetCmd.Flags().StringVar(&cfgDefaultPlan, "default-plan", "", "Plan used when --plan is omitted")
	configSetCmd.Flags().StringVar(&cfgUSDAAPIKey, "usda-api-key", "", "API key for USDA FoodData Central lookups")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
