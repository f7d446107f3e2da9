package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collectiontour/internal/config"
	"collectiontour/internal/logging"
)

var forceInit bool

// newConfigCmd manages the config file
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to --config",
		Args:  cobra.NoArgs,
		RunE:  configInit,
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config (file, env and flags merged)",
		Args:  cobra.NoArgs,
		RunE:  configShow,
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func configInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	logs.Get(logging.CategoryBoot).Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}

func configShow(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
