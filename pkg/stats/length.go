package stats

import "github.com/aretw0/notestats/pkg/core"

// Bucket is a half-open word count range [Min, Max). Max < 0 means unbounded.
type Bucket struct {
	Label string
	Min   int
	Max   int
}

// Contains reports whether words falls inside the bucket.
func (b Bucket) Contains(words int) bool {
	return words >= b.Min && (b.Max < 0 || words < b.Max)
}

// Buckets partition [0, inf) into contiguous, non-overlapping ranges.
var Buckets = [6]Bucket{
	{Label: "0-100", Min: 0, Max: 100},
	{Label: "100-500", Min: 100, Max: 500},
	{Label: "500-1k", Min: 500, Max: 1000},
	{Label: "1k-2k", Min: 1000, Max: 2000},
	{Label: "2k-5k", Min: 2000, Max: 5000},
	{Label: "5k+", Min: 5000, Max: -1},
}

// BucketIndex returns the index of the bucket holding words.
// Negative counts cannot occur for real notes and land in the first bucket.
func BucketIndex(words int) int {
	for i, b := range Buckets {
		if b.Contains(words) {
			return i
		}
	}
	return 0
}

// Length is the distribution of notes over Buckets.
type Length struct {
	Counts     [len(Buckets)]int
	MostCommon int // index of the first bucket with the maximum count
	Longest    int // highest non-empty bucket, 0 when all are empty
	Shortest   int // lowest non-empty bucket, 0 when all are empty
}

// LengthStats buckets every note by its own word count.
func LengthStats(c core.Corpus) Length {
	var l Length
	for _, n := range c.Notes() {
		l.Counts[BucketIndex(n.Words)]++
	}

	for i, n := range l.Counts {
		if n > l.Counts[l.MostCommon] {
			l.MostCommon = i
		}
	}
	for i := len(l.Counts) - 1; i >= 0; i-- {
		if l.Counts[i] > 0 {
			l.Longest = i
			break
		}
	}
	for i, n := range l.Counts {
		if n > 0 {
			l.Shortest = i
			break
		}
	}
	return l
}

// Total returns the number of bucketed notes.
func (l Length) Total() int {
	total := 0
	for _, n := range l.Counts {
		total += n
	}
	return total
}

func (l Length) Metrics() core.MetricSet {
	dist := make(map[string]int, len(Buckets))
	for i, b := range Buckets {
		dist[b.Label] = l.Counts[i]
	}
	return core.MetricSet{
		"length_distribution": dist,
		"most_common_bracket": Buckets[l.MostCommon].Label,
		"most_common_count":   l.Counts[l.MostCommon],
		"longest_bracket":     Buckets[l.Longest].Label,
		"longest_count":       l.Counts[l.Longest],
		"shortest_bracket":    Buckets[l.Shortest].Label,
		"shortest_count":      l.Counts[l.Shortest],
	}
}
