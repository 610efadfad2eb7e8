package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conectone/platform/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed [locations.yaml]",
	Short: "Seed location reference data",
	Long: `Load countries and cities from a YAML fixture into the database.

Countries are upserted by ISO code and each seeded country's cities are
replaced, so reseeding with an updated fixture is idempotent.

Example fixture:

  countries:
    - code: ZA
      name: South Africa
      dial_code: "+27"
      currency_code: ZAR
      cities:
        - name: Cape Town
          region: Western Cape
          latitude: -33.9249
          longitude: 18.4241`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := "configs/locations.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open seed file: %w", err)
	}
	defer f.Close()

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	countries, cities, err := store.SeedLocations(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Seeded %d countries and %d cities from %s\n", countries, cities, path)
	return nil
}
