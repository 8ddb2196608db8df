package quiz

import "github.com/taskgene/arena/internal/questiongen"

// questionsLoadedMsg carries the Source result into the screen.
type questionsLoadedMsg struct {
	Result questiongen.Result
}
