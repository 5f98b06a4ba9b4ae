package model

// AnswerMode distinguishes the three answer variants a participant can
// record for a folder. A folder with no Answer at all is simply unanswered.
type AnswerMode string

const (
	// AnswerBest marks a single image as the preferred one.
	AnswerBest AnswerMode = "best"
	// AnswerWorstEqual marks one image as the single worst, which implies
	// the remaining images tie for best.
	AnswerWorstEqual AnswerMode = "worst_equal"
	// AnswerNone records an explicit "no preference" for the folder.
	AnswerNone AnswerMode = "none"
)

// Answer is the single recorded answer for one folder. Exactly one variant
// is active at a time; recording a new answer for the folder replaces the
// previous one wholesale.
type Answer struct {
	Mode AnswerMode `json:"mode"`
	// Best holds the selected filename when Mode is AnswerBest.
	Best string `json:"best,omitempty"`
	// Others holds the images tying for best when Mode is AnswerWorstEqual.
	Others []string `json:"others,omitempty"`
}

// Worst derives the single worst image for a worst_equal answer by removing
// Others from the question's image list. Returns "" for other modes or when
// the answer no longer matches the question.
func (a Answer) Worst(q *Question) string {
	if a.Mode != AnswerWorstEqual {
		return ""
	}
	inOthers := make(map[string]bool, len(a.Others))
	for _, o := range a.Others {
		inOthers[o] = true
	}
	for _, img := range q.Images {
		if !inOthers[img] {
			return img
		}
	}
	return ""
}
