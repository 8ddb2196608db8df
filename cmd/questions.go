package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/rewards"
	"github.com/taskgene/arena/internal/scoring"
	"github.com/taskgene/arena/internal/session"
	"github.com/taskgene/arena/internal/store"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the challenge questions, or play them without the TUI",
	Long: `Print the built-in challenge.

With --generate the configured LLM provider is asked for questions first and
its raw output is shown; generation failures fall back to the built-in
challenge exactly as in the app. With --play the questions are answered on
stdin and scored.`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().Bool("generate", false, "Ask the LLM provider for questions")
	questionsCmd.Flags().Bool("play", false, "Answer the questions on stdin and show the score")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	generate, _ := cmd.Flags().GetBool("generate")
	play, _ := cmd.Flags().GetBool("play")
	out := cmd.OutOrStdout()

	profile, err := resolveProfile(cmd)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	questions := challenge.ListQuestions()
	if generate {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		source, poweredBy := buildSource(ctx, cmd, st.EventRepo(), profile)
		if poweredBy == "" {
			return errors.New("no LLM provider configured; set TASKGENE_LLM_PROVIDER")
		}

		fmt.Fprintf(out, "Generating questions using %s...\n\n", poweredBy)
		res := source.Load(ctx)
		printResult(out, res)
		questions = res.Questions
	}

	sess := session.New(questions)
	if !play {
		printQuestions(out, sess.Questions())
		return nil
	}

	outcome, err := playSession(cmd.InOrStdin(), out, sess)
	if err != nil {
		return err
	}
	printOutcome(out, *outcome, profile)
	return nil
}

func printResult(w io.Writer, res questiongen.Result) {
	if res.Raw != "" {
		fmt.Fprintln(w, "── Model output ──")
		fmt.Fprintln(w, res.Raw)
		fmt.Fprintln(w)
	}
	switch {
	case res.Fallback():
		fmt.Fprintf(w, "Generation failed: %v\nUsing the built-in challenge.\n\n", res.Err)
	case res.Origin == questiongen.OriginGenerated:
		fmt.Fprintln(w, "Using the generated questions.")
		fmt.Fprintln(w)
	default:
		fmt.Fprintln(w, "Using the built-in challenge.")
		fmt.Fprintln(w)
	}
}

func printQuestions(w io.Writer, qs []challenge.Question) {
	for i, q := range qs {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Prompt)
		for _, o := range q.Options {
			mark := " "
			if o == q.Answer {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %s\n", mark, o)
		}
		fmt.Fprintln(w)
	}
}

// playSession asks every question on r and submits the answers. An option
// is picked by its number (1-4) or its letter.
func playSession(r io.Reader, w io.Writer, sess *session.Session) (*scoring.Outcome, error) {
	if err := sess.Start(); err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	qs := sess.Questions()

	for i := 0; i < len(qs); {
		q := qs[i]
		fmt.Fprintf(w, "── Question %d/%d ──\n%s\n", i+1, len(qs), q.Prompt)
		for j, o := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", j+1, o)
		}
		fmt.Fprint(w, "\nYour answer: ")

		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		idx, ok := parseChoice(scanner.Text(), len(q.Options))
		if !ok {
			fmt.Fprintln(w, "Pick 1-4 or A-D.")
			fmt.Fprintln(w)
			continue
		}
		if err := sess.RecordAnswer(i, q.Options[idx]); err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
		i++
	}

	return sess.Submit()
}

func parseChoice(s string, n int) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v - 1, v >= 1 && v <= n
	}
	if len(s) == 1 && s[0] >= 'A' && int(s[0]-'A') < n {
		return int(s[0] - 'A'), true
	}
	return 0, false
}

func printOutcome(w io.Writer, out scoring.Outcome, profile learner.Profile) {
	fmt.Fprintf(w, "🎉 You scored %d out of %d (%s)\n\n", out.Score, out.Total, out.Tier.DisplayName())

	summary := rewards.For(out, profile)
	if len(summary.Badges) > 0 {
		fmt.Fprintln(w, "🏅 Achievement Unlocked")
		for _, b := range summary.Badges {
			line := fmt.Sprintf("  %s %s", b.Icon, b.Name)
			if b.New {
				line += " 🆕"
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
	if summary.Suggestion != "" {
		fmt.Fprintln(w, "💡 "+summary.Suggestion)
		fmt.Fprintln(w)
	}

	d := out.After.Sub(out.Before)
	fmt.Fprintf(w, "Monotony Score     %3d%%  (%+d%%)\n", out.After.Monotony, d.Monotony)
	fmt.Fprintf(w, "Productivity       %3d%%  (%+d%%)\n", out.After.Productivity, d.Productivity)
	fmt.Fprintf(w, "Skill Engagement   %3d%%  (%+d%%)\n", out.After.SkillEngagement, d.SkillEngagement)
}
