// Package learner describes the person taking the challenge: their name,
// what they are working on and their recent activity history.
package learner

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTopic is used for question generation when the history is empty.
const DefaultTopic = "Excel data analysis"

// Activity is one day of logged work.
type Activity struct {
	Date  string `yaml:"date"`  // YYYY-MM-DD
	Task  string `yaml:"task"`  // Long description, used for prompting
	Label string `yaml:"label"` // Short timeline label
	Icon  string `yaml:"icon"`
}

// DisplayDate formats Date as "Apr 18", or returns it unchanged if it does
// not parse.
func (a Activity) DisplayDate() string {
	t, err := time.Parse(time.DateOnly, a.Date)
	if err != nil {
		return a.Date
	}
	return t.Format("Jan 2")
}

// Profile is the learner the arena greets.
type Profile struct {
	Name        string     `yaml:"name"`
	CurrentTask string     `yaml:"current_task"`
	MinutesIn   int        `yaml:"minutes_in"`
	History     []Activity `yaml:"history"`
}

// Default returns the built-in demo learner.
func Default() Profile {
	return Profile{
		Name:        "Priya",
		CurrentTask: "Q2 Sales Data",
		MinutesIn:   45,
		History: []Activity{
			{Date: "2025-04-18", Task: "7 hours of manual invoice reconciliation", Label: "Manual invoice reconciliation", Icon: "🧾"},
			{Date: "2025-04-19", Task: "6.5 hours updating Excel P&L statements", Label: "Excel P&L statement updates", Icon: "📈"},
			{Date: "2025-04-20", Task: "7.5 hours data entry: quarterly sales numbers", Label: "Quarterly sales data entry", Icon: "🔢"},
		},
	}
}

// Load reads a YAML profile from path. Fields absent from the file keep
// their Default values; a present but empty history list stays empty.
func Load(path string) (Profile, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Name == "" {
		return p, fmt.Errorf("parse profile %s: name is required", path)
	}
	for i := range p.History {
		if p.History[i].Label == "" {
			p.History[i].Label = p.History[i].Task
		}
	}
	return p, nil
}

// LastTask returns the most recent history task, or DefaultTopic.
func (p Profile) LastTask() string {
	if len(p.History) == 0 {
		return DefaultTopic
	}
	return p.History[len(p.History)-1].Task
}
