package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"sourcehub/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set official.url to your published sources.json, or leave it empty to use the bundled list.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration and check directory permissions",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := colorEnabled(out)
			fmt.Fprintf(out, "Config path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			checks := []configCheck{
				checkWritableDir("Data dir", cfg.Paths.DataDir),
				checkWritableDir("Log dir", cfg.Paths.LogDir),
				checkOfficialLocation(cfg.Official.URL),
				{label: "Draft store", status: checkInfo, message: cfg.DraftDBPath()},
			}
			failed := false
			for _, check := range checks {
				fmt.Fprintln(out, renderCheck(check, colorize))
				if check.status == checkFailed {
					failed = true
				}
			}
			if failed {
				return errors.New("configuration has problems")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

type configCheck struct {
	label   string
	status  checkStatus
	message string
}

func checkWritableDir(label, dir string) configCheck {
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return configCheck{label: label, status: checkFailed, message: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	return configCheck{label: label, status: checkOK, message: dir}
}

func checkOfficialLocation(location string) configCheck {
	const label = "Official source"
	switch {
	case location == "":
		return configCheck{label: label, status: checkInfo, message: "bundled list"}
	case config.IsRemoteURL(location):
		return configCheck{label: label, status: checkInfo, message: location + " (fetched on demand)"}
	}
	if err := unix.Access(location, unix.R_OK); err != nil {
		return configCheck{
			label:   label,
			status:  checkWarn,
			message: fmt.Sprintf("%s is not readable (%v); the bundled list will be used", filepath.Clean(location), err),
		}
	}
	return configCheck{label: label, status: checkOK, message: location}
}
