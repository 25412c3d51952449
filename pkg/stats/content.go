package stats

import "github.com/aretw0/notestats/pkg/core"

// Content counts links, media, code and math.
type Content struct {
	InternalLinks int
	ExternalURLs  int
	Images        int // ![[embed]] plus ![alt](src)
	CodeBlocks    int // fence markers / 2, an odd marker is dropped
	Math          int // $$block$$ plus $inline$
}

// ContentStats counts content markers across the corpus.
func ContentStats(c core.Corpus) Content {
	return Content{
		InternalLinks: c.Count(reInternalLink),
		ExternalURLs:  c.Count(reExternalURL),
		Images:        c.Count(reWikiImage) + c.Count(reInlineImage),
		CodeBlocks:    c.CountLiteral(codeFence) / 2,
		Math:          c.Count(reMathBlock) + c.Count(reMathInline),
	}
}

func (s Content) Metrics() core.MetricSet {
	return core.MetricSet{
		"internal_links": s.InternalLinks,
		"external_urls":  s.ExternalURLs,
		"images":         s.Images,
		"code_blocks":    s.CodeBlocks,
		"math_expr":      s.Math,
	}
}
