package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ellekaen/VanityOS-Api/data"
	"github.com/ellekaen/VanityOS-Api/services"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <food>",
	Short: "Look up the comedogenic grade of a food ingredient",
	Example: `  vanityos lookup "Jojoba Oil"
  vanityos lookup coconut`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := services.NewIngredientCatalog(data.Ingredients())
		if err != nil {
			return err
		}
		food := services.NewFoodService(services.FoodDeps{Catalog: catalog})
		out, err := food.LookupIngredient(strings.Join(args, " "))
		if pErr := printJSON(cmd, out); pErr != nil {
			return pErr
		}
		if errors.Is(err, services.ErrIngredientNotFound) {
			return err
		}
		return nil
	},
}

var verdictCmd = &cobra.Command{
	Use:     "verdict <label>",
	Short:   "Show the acne verdict for a classifier label",
	Example: `  vanityos verdict pumpkin_seeds`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verdicts, err := services.LoadVerdictMapper(viper.GetString("food_db_path"), data.AcneFoods)
		if err != nil {
			return err
		}
		v, ok := verdicts.MapVerdict(args[0])
		if err := printJSON(cmd, v); err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%q is not in the acne food database", args[0])
		}
		return nil
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(verdictCmd)
}
