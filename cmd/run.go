package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/taskgene/arena/internal/app"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/llm"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/screens/arena"
	"github.com/taskgene/arena/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := resolveProfile(cmd)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	source, poweredBy := buildSource(ctx, cmd, st.EventRepo(), profile)

	closeLog, err := redirectLog()
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(app.Options{
		Arena: arena.Config{
			Profile:   profile,
			Source:    source,
			PoweredBy: poweredBy,
		},
	})
}

// buildSource wires the configured LLM provider into a question Source.
// Without a provider the Source serves only the built-in challenge.
func buildSource(ctx context.Context, cmd *cobra.Command, eventRepo store.EventRepo, profile learner.Profile) (*questiongen.Source, string) {
	adopt, _ := cmd.Flags().GetBool("adopt-generated")

	cfg := llm.ResolveConfig()
	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Using the built-in challenge.")
		}
		return questiongen.NewSource(nil, profile), ""
	}

	genCfg := questiongen.DefaultConfig()
	genCfg.Structured = adopt
	gen := questiongen.New(provider, genCfg)

	poweredBy := fmt.Sprintf("%s (%s)", llm.DisplayName(cfg.Provider), provider.ModelID())
	return questiongen.NewSource(gen, profile,
		questiongen.WithAdoptGenerated(adopt),
		questiongen.WithTimeout(cfg.Timeout),
	), poweredBy
}

// redirectLog keeps log output off the terminal while the TUI owns it.
func redirectLog() (func(), error) {
	if path := envOr("TASKGENE_DEBUG", ""); path != "" {
		if path == "1" || path == "true" {
			path = "taskgene-debug.log"
		}
		f, err := tea.LogToFile(path, "taskgene")
		if err != nil {
			return nil, fmt.Errorf("open debug log: %w", err)
		}
		return func() { f.Close() }, nil
	}

	prev := log.Writer()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
