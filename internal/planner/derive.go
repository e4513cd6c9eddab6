package planner

import (
	"regexp"
	"strings"
)

var (
	subjectLabelPattern = regexp.MustCompile(`(?i)Subject:\s*([^\n]+)`)
	subjectLoosePattern = regexp.MustCompile(`(?i)subject\s+([^.\n]+)`)
	topicLabelPattern   = regexp.MustCompile(`(?i)Topic:\s*([^\n]+)`)
	topicLoosePattern   = regexp.MustCompile(`(?i)topic\s+([^.\n]+)`)
)

// DeriveSubjectTopic extracts a (subject, topic) pair from free-form text.
// A labeled "Subject:" line wins over the looser "subject <words>" pattern;
// both fall back to the literal defaults when nothing matches.
func DeriveSubjectTopic(text string) (string, string) {
	subject := firstMatch(text, subjectLabelPattern, subjectLoosePattern)
	if subject == "" {
		subject = "Subject"
	}
	topic := firstMatch(text, topicLabelPattern, topicLoosePattern)
	if topic == "" {
		topic = "Topic"
	}
	return subject, topic
}

func firstMatch(text string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}
