package questiongen

import (
	"testing"

	"github.com/taskgene/arena/internal/challenge"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "count", Index: -1, Message: "got 6 questions, want 7"}
	if err.Error() != `validator "count": got 6 questions, want 7` {
		t.Errorf("got %q", err.Error())
	}
	err = &ValidationError{Validator: "answer", Index: 2, Message: "bad"}
	if err.Error() != `validator "answer": question 3: bad` {
		t.Errorf("got %q", err.Error())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"count", "structural", "answer"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d = %q, want %q", i, v.Name(), names[i])
		}
	}
	if cfg.Structured {
		t.Error("default config should keep generated text opaque")
	}
	if cfg.Count != 7 || cfg.MaxTokens != 800 || cfg.Temperature != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestValidators_AcceptBuiltInSet(t *testing.T) {
	qs := challenge.ListQuestions()
	for _, v := range DefaultConfig().Validators {
		if err := v.Validate(qs, GenerateInput{Count: 7}); err != nil {
			t.Errorf("%s rejected the built-in set: %v", v.Name(), err)
		}
	}
}

func TestValidators_Reject(t *testing.T) {
	tests := []struct {
		name   string
		v      Validator
		mutate func([]challenge.Question) []challenge.Question
	}{
		{"count short", &CountValidator{}, func(qs []challenge.Question) []challenge.Question { return qs[:6] }},
		{"empty prompt", &StructuralValidator{}, func(qs []challenge.Question) []challenge.Question {
			qs[1].Prompt = ""
			return qs
		}},
		{"three options", &StructuralValidator{}, func(qs []challenge.Question) []challenge.Question {
			qs[2].Options = qs[2].Options[:3]
			return qs
		}},
		{"duplicate option", &StructuralValidator{}, func(qs []challenge.Question) []challenge.Question {
			qs[3].Options[1] = qs[3].Options[0]
			return qs
		}},
		{"answer not an option", &AnswerValidator{}, func(qs []challenge.Question) []challenge.Question {
			qs[4].Answer = "E. COUNTBLANK"
			return qs
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := tt.mutate(challenge.ListQuestions())
			if err := tt.v.Validate(qs, GenerateInput{Count: 7}); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    string
	}{
		{"labeled exact", []string{"A. x", "B. y", "C. z", "D. w"}, "B. y", "B. y"},
		{"bare letter", []string{"x", "y", "z", "w"}, "d", "D. w"},
		{"letter with dot", []string{"x", "y", "z", "w"}, "C.", "C. z"},
		{"bare text", []string{"x", "y", "z", "w"}, "y", "B. y"},
		{"mislabeled options", []string{"B. x", "A. y", "C. z", "D. w"}, "A. y", "B. y"},
		{"no match", []string{"x", "y", "z", "w"}, "q", "q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := normalizeQuestion(" Prompt ", tt.options, tt.answer)
			if q.Answer != tt.want {
				t.Errorf("Answer = %q, want %q", q.Answer, tt.want)
			}
			if q.Prompt != "Prompt" {
				t.Errorf("Prompt = %q", q.Prompt)
			}
		})
	}
}
