// Package completion parses mentor output for the deliverable block and the
// task completion marker. The grammar has exactly two constructs: a
// [DELIVERABLE_START]...[DELIVERABLE_END] block and a standalone
// [TASK_COMPLETE] token. Detection is deterministic and side-effect-free.
package completion

import "strings"

const (
	DeliverableStart = "[DELIVERABLE_START]"
	DeliverableEnd   = "[DELIVERABLE_END]"
	TaskComplete     = "[TASK_COMPLETE]"
)

// Outcome classifies what the detector found.
type Outcome string

const (
	// OutcomeAbsent: no marker construct in the text.
	OutcomeAbsent Outcome = "absent"
	// OutcomeDraft: deliverable block without a completion marker. The block
	// is stripped from the cleaned text but not treated as a commit.
	OutcomeDraft Outcome = "draft"
	// OutcomeMarkerOnly: completion marker without a deliverable block.
	OutcomeMarkerOnly Outcome = "marker_only"
	// OutcomeComplete: well-formed block plus completion marker.
	OutcomeComplete Outcome = "complete"
	// OutcomeMalformed: unterminated deliverable block. Nothing unmatched is
	// stripped and completion is never signaled.
	OutcomeMalformed Outcome = "malformed"
)

type Result struct {
	CleanedText string
	Deliverable *string
	IsComplete  bool
	Outcome     Outcome
}

// Detect scans raw model output for the two marker constructs and returns the
// cleaned conversational text alongside the parsed completion state.
//
// Malformed input (a start marker with no matching end) fails soft: the
// unmatched construct stays in the text and IsComplete is false regardless of
// any completion marker.
func Detect(raw string) Result {
	start := strings.Index(raw, DeliverableStart)
	if start >= 0 && !strings.Contains(raw[start+len(DeliverableStart):], DeliverableEnd) {
		return Result{CleanedText: strings.TrimSpace(raw), Outcome: OutcomeMalformed}
	}

	var deliverable *string
	cleaned := raw
	if start >= 0 {
		rest := cleaned[start+len(DeliverableStart):]
		end := strings.Index(rest, DeliverableEnd)
		body := strings.TrimSpace(rest[:end])
		deliverable = &body
		cleaned = cleaned[:start] + rest[end+len(DeliverableEnd):]
		// A second block would be malformed output from the model; any
		// further well-formed blocks are stripped, first body wins.
		cleaned = stripBlocks(cleaned)
	}

	hasComplete := strings.Contains(cleaned, TaskComplete)
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, TaskComplete, ""))

	switch {
	case deliverable != nil && hasComplete:
		return Result{CleanedText: cleaned, Deliverable: deliverable, IsComplete: true, Outcome: OutcomeComplete}
	case deliverable != nil:
		// Draft note: block content is discarded from the logical
		// deliverable, only removed from the conversational text.
		return Result{CleanedText: cleaned, Outcome: OutcomeDraft}
	case hasComplete:
		return Result{CleanedText: cleaned, IsComplete: true, Outcome: OutcomeMarkerOnly}
	default:
		return Result{CleanedText: cleaned, Outcome: OutcomeAbsent}
	}
}

func stripBlocks(text string) string {
	for {
		start := strings.Index(text, DeliverableStart)
		if start < 0 {
			return text
		}
		rest := text[start+len(DeliverableStart):]
		end := strings.Index(rest, DeliverableEnd)
		if end < 0 {
			return text
		}
		text = text[:start] + rest[end+len(DeliverableEnd):]
	}
}
