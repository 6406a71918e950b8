package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindwell-care/patients/patients"
	"github.com/mindwell-care/patients/store"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Ensure the unique patient indexes exist",
	Long:  "The indexes command declares the unique email and phone indexes which back uniqueness enforcement under concurrent writes",
	RunE:  func(cmd *cobra.Command, args []string) error { return ensureIndexes() },
}

func ensureIndexes() error {
	cfg, err := store.NewConfig()
	if err != nil {
		return err
	}

	client, err := store.NewClient(cfg)
	if err != nil {
		return err
	}

	db, err := store.NewDatabase(client, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := store.NewDbContext()
	defer cancel()
	defer func() { _ = client.Disconnect(ctx) }()

	if err := patients.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	fmt.Println("patient indexes are in place")
	return nil
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
