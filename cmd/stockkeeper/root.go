package main

import (
	"github.com/spf13/cobra"

	"stockkeeper/internal/cli"
	"stockkeeper/internal/config"
	"stockkeeper/internal/inventory"
	"stockkeeper/internal/storage"
)

// app carries the manager shared by all subcommands. It is populated in
// PersistentPreRunE so every command sees the same loaded inventory.
type app struct {
	cfg     config.Config
	manager *inventory.Manager
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var dataFile, movementFile string

	root := &cobra.Command{
		Use:   "stockkeeper",
		Short: "Flat-file inventory manager",
		Long: `Stockkeeper tracks products, stock levels and reorder thresholds in a
JSON file. Run without arguments for the interactive menu, or use the
subcommands for scripting.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			if movementFile != "" {
				cfg.MovementFile = movementFile
			}
			a.cfg = cfg

			store := storage.NewStoreWithBackupSuffix(cfg.DataFile, cfg.BackupSuffix)
			manager, err := inventory.NewManager(store, storage.NewMovementLog(cfg.MovementFile))
			if err != nil {
				return err
			}
			a.manager = manager
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.New(a.manager, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	root.PersistentFlags().StringVar(&dataFile, "data", "", "inventory data file (overrides config)")
	root.PersistentFlags().StringVar(&movementFile, "movements", "", "movement history file (overrides config)")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newDeleteCmd(a),
		newAddStockCmd(a),
		newRemoveStockCmd(a),
		newSearchCmd(a),
		newLowStockCmd(a),
		newReportCmd(a),
		newMovementsCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newBackupCmd(a),
		newClearCmd(a),
	)
	return root
}
