package quiz

import "math"

// Result is the scored outcome of one completed quiz.
type Result struct {
	Total      int               `json:"total"`
	Index      int               `json:"index"`
	Profile    Profile           `json:"profile"`
	Dimensions map[Dimension]int `json:"dimensions"`
}

// Score maps answer option indexes (one per question, in bank order) to an
// Incoterms profile. The total in [-30, 30] is projected onto the eleven
// rules ordered by seller obligation:
//
//	index = round((total + 30) / 60 * 10)
//
// The projection is deliberately linear even though answer totals cluster
// around the middle, so edge profiles like EXW and DDP require consistently
// extreme answers.
func Score(answers []int) (Result, error) {
	bank := questionBank
	if len(answers) != len(bank) {
		return Result{}, ErrAnswerCount
	}

	total := 0
	dims := make(map[Dimension]int, 5)
	for i, a := range answers {
		q := bank[i]
		if a < 0 || a >= len(q.Options) {
			return Result{}, ErrAnswerRange
		}
		w := q.Options[a].Weight
		total += w
		dims[q.Dimension] += w
	}

	idx := projectIndex(total)

	return Result{
		Total:      total,
		Index:      idx,
		Profile:    profilesByCode[profileOrder[idx]],
		Dimensions: dims,
	}, nil
}

// projectIndex maps a total in [-30, 30] onto [0, 10]. Rounding makes the
// edge buckets narrower than the middle ones.
func projectIndex(total int) int {
	span := float64(QuestionCount * maxWeight)
	idx := int(math.Round((float64(total) + span) / (2 * span) * float64(len(profileOrder)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(profileOrder)-1 {
		idx = len(profileOrder) - 1
	}
	return idx
}
