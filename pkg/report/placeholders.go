package report

// Placeholder names, written in templates as {{NAME}}.
const (
	TotalNotes  = "TOTAL_NOTES"
	TotalWords  = "TOTAL_WORDS"
	TotalLines  = "TOTAL_LINES"
	DiskUsage   = "DISK_USAGE"
	AvgWords    = "AVG_WORDS"
	AvgLines    = "AVG_LINES"
	TotalVaults = "TOTAL_VAULTS"

	TotalTasks          = "TOTAL_TASKS"
	TasksCompleted      = "TASKS_COMPLETED"
	TasksUnchecked      = "TASKS_UNCHECKED"
	TaskCompletion      = "TASK_COMPLETION"
	TaskCompletionAngle = "TASK_COMPLETION_ANGLE"
	TaskProgressBar     = "TASK_PROGRESS_BAR"

	InternalLinks = "INTERNAL_LINKS"
	ExternalURLs  = "EXTERNAL_URLS"
	Images        = "IMAGES"
	CodeBlocks    = "CODE_BLOCKS"
	MathExpr      = "MATH_EXPR"

	H1Count     = "H1_COUNT"
	H2Count     = "H2_COUNT"
	H3Count     = "H3_COUNT"
	H4Count     = "H4_COUNT"
	Lists       = "LISTS"
	Blockquotes = "BLOCKQUOTES"
	Tables      = "TABLES"
	HRCount     = "HR_COUNT"

	DaysSinceLastEdit  = "DAYS_SINCE_LAST_EDIT"
	MonthlyActivity    = "MONTHLY_ACTIVITY"
	DayOfWeekBars      = "DAY_OF_WEEK_BARS"
	MostActiveDay      = "MOST_ACTIVE_DAY"
	MostActiveDayCount = "MOST_ACTIVE_DAY_COUNT"

	LengthDistribution = "LENGTH_DISTRIBUTION"
	MostCommonBracket  = "MOST_COMMON_BRACKET"
	MostCommonCount    = "MOST_COMMON_COUNT"
	LongestBracket     = "LONGEST_BRACKET"
	LongestCount       = "LONGEST_COUNT"
	ShortestBracket    = "SHORTEST_BRACKET"
	ShortestCount      = "SHORTEST_COUNT"

	LastUpdated = "LAST_UPDATED"

	// FileSize is only known once the report is on disk; see Renderer.Finalize.
	FileSize = "FILE_SIZE"
)

// headingNames maps heading level-1 to its placeholder.
var headingNames = [4]string{H1Count, H2Count, H3Count, H4Count}

// Token returns the template form of a placeholder name.
func Token(name string) string {
	return "{{" + name + "}}"
}
