package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grantlerdal/mend/internal/app"
	"github.com/grantlerdal/mend/internal/conflict"
	"github.com/grantlerdal/mend/internal/git"
	"github.com/grantlerdal/mend/internal/logging"
	"github.com/grantlerdal/mend/internal/ui"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mend [files...]",
	Short: "Resolve git merge and rebase conflicts interactively",
	Long: "mend finds the conflicted files of an in-progress merge or rebase,\n" +
		"lets you pick a side for every conflict in a terminal UI and writes\n" +
		"the resolved files back atomically.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		viper.SetEnvPrefix("MEND")
		viper.AutomaticEnv()
		readConfigFile()

		cleanup, err := logging.Init(viper.GetBool("debug"))
		if err != nil {
			return err
		}
		cleanupLogging = cleanup
		return nil
	},
	RunE: runSession,
}

var cleanupLogging func()

func Execute() error {
	err := rootCmd.Execute()
	if cleanupLogging != nil {
		cleanupLogging()
	}
	return err
}

func init() {
	rootCmd.Flags().Bool("debug", false, "write debug output to mend-debug.log")
	rootCmd.Flags().String("theme", "mocha", "catppuccin flavor (mocha, latte, frappe, macchiato)")
	rootCmd.Flags().Bool("pick", false, "choose which conflicted files to load")
	rootCmd.Flags().String("dir", ".", "repository working directory")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mend version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mend " + version)
	},
}

func readConfigFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(home, ".config", "mend"))
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("loaded config file", "path", viper.ConfigFileUsed())
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	repo := git.New(viper.GetString("dir"))

	operation, err := repo.DetectOperation()
	if err != nil {
		return err
	}
	slog.Info("detected operation", "operation", operation.String())

	paths := args
	if len(paths) == 0 {
		paths, err = repo.ConflictedFiles()
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		fmt.Println("No conflicted files found.")
		return nil
	}

	if viper.GetBool("pick") && len(paths) > 1 {
		paths, err = ui.PickFiles(paths)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No files selected.")
			return nil
		}
	}

	// A file that fails to parse is excluded with a warning; the rest of
	// the session goes on without it.
	var files []*conflict.File
	for _, path := range paths {
		file, err := conflict.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			slog.Warn("skipping file", "path", path, "err", err)
			continue
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return fmt.Errorf("none of the %d conflicted files could be parsed", len(paths))
	}

	state := app.New(files, operation)
	theme := ui.NewTheme(viper.GetString("theme"))
	return ui.Run(state, repo, theme)
}
