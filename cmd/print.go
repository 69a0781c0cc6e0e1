package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zhubert/taches/internal/app"
	"github.com/zhubert/taches/internal/ui"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the lists and the selected list as plain text",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	surface := ui.NewTextSurface()
	controller := app.NewController(repo, surface)
	if err := controller.Load(cfg.GetInitialList()); err != nil {
		return err
	}

	_, err = surface.WriteTo(cmd.OutOrStdout())
	return err
}
