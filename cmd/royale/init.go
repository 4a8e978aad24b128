package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-royale/internal/config"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default data files to ~/.royale",
	Long: `Writes config.yaml, catalog.yaml and profile.yaml with the built-in
defaults to ~/.royale so they can be customised. Existing files are kept
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".royale")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	for _, name := range []string{"config", "catalog", "profile"} {
		path := filepath.Join(dir, name+".yaml")
		if !flagForce {
			if _, err := os.Stat(path); err == nil {
				logger.Info("keeping existing file", "path", path)
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		if err := os.WriteFile(path, config.GetDefaultYAML(name), 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
