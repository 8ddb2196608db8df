package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "taskgene",
	Short: "Spreadsheet micro-challenges for bored analysts",
	Long: `TaskGene Challenge Arena interrupts long stretches of repetitive
spreadsheet work with a short multiple-choice challenge, then shows how the
learner's skill and productivity dashboard moved.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TASKGENE_DB env var)")
	rootCmd.PersistentFlags().String("profile", "", "Path to a YAML learner profile (overrides TASKGENE_PROFILE env var)")
	rootCmd.PersistentFlags().Bool("adopt-generated", false, "Use validated generated questions instead of the built-in challenge")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv reads .env from the working directory. Variables already set
// in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("taskgene: reading .env:", err)
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TASKGENE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveProfile loads the learner profile from --profile or
// TASKGENE_PROFILE, or returns the demo learner.
func resolveProfile(cmd *cobra.Command) (learner.Profile, error) {
	path, _ := cmd.Flags().GetString("profile")
	if path == "" {
		path = envOr("TASKGENE_PROFILE", "")
	}
	if path == "" {
		return learner.Default(), nil
	}
	return learner.Load(path)
}
