package stats

import "regexp"

// Content patterns.
var (
	reInternalLink = regexp.MustCompile(`\[\[[^\]]*\]\]`)
	reExternalURL  = regexp.MustCompile(`https?://[^[:space:]]+`)
	reWikiImage    = regexp.MustCompile(`!\[\[[^\]]*\]\]`)
	reInlineImage  = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reMathBlock    = regexp.MustCompile(`\$\$[^$]*\$\$`)
	reMathInline   = regexp.MustCompile(`\$[^$]*\$`)
)

// codeFence is counted literally; two fences make one block.
const codeFence = "```"

// Markdown structure patterns.
var (
	reHeadings = [4]*regexp.Regexp{
		regexp.MustCompile(`^# `),
		regexp.MustCompile(`^## `),
		regexp.MustCompile(`^### `),
		regexp.MustCompile(`^#### `),
	}
	reBulletItem   = regexp.MustCompile(`^[[:space:]]*[-*] `)
	reNumberedItem = regexp.MustCompile(`^[[:space:]]*[0-9]+\. `)
	reBlockquote   = regexp.MustCompile(`^> `)
	reTableRow     = regexp.MustCompile(`^\|.*\|$`)
	reRuleDashes   = regexp.MustCompile(`^---$`)
	reRuleStars    = regexp.MustCompile(`^\*\*\*$`)
)

// Checklist patterns.
var (
	reTaskAny  = regexp.MustCompile(`- \[[ x]\]`)
	reTaskDone = regexp.MustCompile(`- \[x\]`)
)
