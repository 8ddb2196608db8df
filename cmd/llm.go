package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/taskgene/arena/internal/llm"
	"github.com/taskgene/arena/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect question-generation requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No LLM events found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), eventTable(events))
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			printEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			stats, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(stats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No LLM usage recorded yet.")
				return nil
			}
			models, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Usage by Purpose")
			fmt.Fprintln(w, purposeTable(stats))
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Estimated Cost (USD)")
			costs, unknown := costTable(models)
			fmt.Fprintln(w, costs)
			if len(unknown) > 0 {
				fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}

// withEventRepo opens the store for the duration of fn.
func withEventRepo(cmd *cobra.Command, fn func(context.Context, store.EventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, s.EventRepo())
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func eventTable(events []store.LLMRequestEventRecord) string {
	t := newTable("ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		t.Row(
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Purpose,
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
		)
	}
	return t.String()
}

func purposeTable(stats []store.LLMUsageStats) string {
	t := newTable("Purpose", "Calls", "Failed", "Input", "Output", "Avg Ms")
	var calls, failed, in, out int
	for _, st := range stats {
		t.Row(st.Purpose, strconv.Itoa(st.Requests), strconv.Itoa(st.Failures),
			strconv.Itoa(st.InputTokens), strconv.Itoa(st.OutputTokens),
			strconv.FormatInt(st.AvgLatencyMs, 10))
		calls += st.Requests
		failed += st.Failures
		in += st.InputTokens
		out += st.OutputTokens
	}
	t.Row("TOTAL", strconv.Itoa(calls), strconv.Itoa(failed), strconv.Itoa(in), strconv.Itoa(out), "")
	return t.String()
}

// costTable prices each model and reports the models with no known price.
func costTable(models []store.LLMModelUsage) (string, []string) {
	t := newTable("Model", "Calls", "Input", "Output", "Cost")
	var total float64
	var unknown []string
	for _, mu := range models {
		cost := "?"
		if price := llm.LookupCost(mu.Model); price != nil {
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unknown = append(unknown, mu.Model)
		}
		t.Row(truncate(mu.Model, 32), strconv.Itoa(mu.Requests),
			strconv.Itoa(mu.InputTokens), strconv.Itoa(mu.OutputTokens), cost)
	}

	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	t.Row(label, "", "", "", formatCost(total))
	return t.String(), unknown
}

func printEvent(w io.Writer, e *store.LLMRequestEventRecord) {
	fmt.Fprintf(w, "ID:        %d\n", e.ID)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(w, "Model:     %s\n", e.Model)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	if e.SessionID != "" {
		fmt.Fprintf(w, "Session:   %s\n", e.SessionID)
	}
	fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	fmt.Fprintf(w, "Success:   %v\n", e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}

	section := func(title, body string) {
		sep := strings.Repeat("─", 60)
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", sep, title, sep)
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(w, body)
	}
	section("REQUEST", e.RequestBody)
	section("RESPONSE", e.ResponseBody)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
