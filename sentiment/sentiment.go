// Package sentiment labels testimonial text with a simple keyword
// heuristic. Like recommend, it is pure and holds no state.
package sentiment

import "strings"

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

var positiveKeywords = []string{
	"amazing", "awesome", "beautiful", "best", "excellent", "fantastic",
	"friendly", "good", "great", "happy", "helpful", "love", "loved",
	"perfect", "professional", "recommend", "satisfied", "wonderful",
}

var negativeKeywords = []string{
	"awful", "bad", "broken", "cancel", "delay", "delayed", "disappointed",
	"expensive", "horrible", "late", "poor", "refund", "rude", "terrible",
	"waste", "worst",
}

// Result is the sentiment of a single message. Score is the net keyword
// count: positive hits minus negative hits.
type Result struct {
	Label Label `json:"label"`
	Score int   `json:"score"`
}

// Summary aggregates sentiment over a set of messages.
type Summary struct {
	Positive int   `json:"positive"`
	Negative int   `json:"negative"`
	Neutral  int   `json:"neutral"`
	Total    int   `json:"total"`
	Overall  Label `json:"overall"`
}

// Analyze labels one message. Matching is case-insensitive and counts
// each keyword at most once per message.
func Analyze(message string) Result {
	text := strings.ToLower(message)

	score := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(text, kw) {
			score--
		}
	}

	switch {
	case score > 0:
		return Result{Label: Positive, Score: score}
	case score < 0:
		return Result{Label: Negative, Score: score}
	default:
		return Result{Label: Neutral, Score: 0}
	}
}

// Summarize labels every message and tallies the results. The overall
// label follows the majority between positive and negative counts,
// neutral on a tie or empty input.
func Summarize(messages []string) Summary {
	var s Summary
	for _, m := range messages {
		switch Analyze(m).Label {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
		s.Total++
	}

	switch {
	case s.Positive > s.Negative:
		s.Overall = Positive
	case s.Negative > s.Positive:
		s.Overall = Negative
	default:
		s.Overall = Neutral
	}
	return s
}
