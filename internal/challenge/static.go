package challenge

// staticQuestions is the built-in spreadsheet-skills set.
var staticQuestions = []Question{
	{
		Prompt:  "Which Excel function is best for looking up a value in a table?",
		Options: []string{"A. SUM", "B. VLOOKUP", "C. COUNT", "D. IF"},
		Answer:  "B. VLOOKUP",
	},
	{
		Prompt:  "What does the CONCAT function do in Excel?",
		Options: []string{"A. Adds numbers", "B. Joins text strings", "C. Counts cells", "D. Finds maximum"},
		Answer:  "B. Joins text strings",
	},
	{
		Prompt:  "Which chart type is best for showing trends over time?",
		Options: []string{"A. Pie Chart", "B. Line Chart", "C. Bar Chart", "D. Scatter Plot"},
		Answer:  "B. Line Chart",
	},
	{
		Prompt:  "What is the default file extension for Excel files?",
		Options: []string{"A. .docx", "B. .xls", "C. .xlsx", "D. .csv"},
		Answer:  "C. .xlsx",
	},
	{
		Prompt:  "Which function counts only numeric values?",
		Options: []string{"A. COUNTA", "B. COUNTIF", "C. COUNT", "D. SUM"},
		Answer:  "C. COUNT",
	},
	{
		Prompt:  "Which shortcut saves a workbook in Excel?",
		Options: []string{"A. Ctrl+S", "B. Ctrl+V", "C. Ctrl+P", "D. Ctrl+Z"},
		Answer:  "A. Ctrl+S",
	},
	{
		Prompt:  "Which of these is a valid Excel cell reference?",
		Options: []string{"A. 12A", "B. A12", "C. 1A2", "D. A-12"},
		Answer:  "B. A12",
	},
}

// QuestionCount is the length of the built-in question set.
const QuestionCount = 7

// ListQuestions returns the built-in questions in display order. Each call
// returns a fresh copy.
func ListQuestions() []Question {
	return CloneAll(staticQuestions)
}
