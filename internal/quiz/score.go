package quiz

// ComputeScore counts the items whose selected option is the correct one.
// Missing and out-of-range selections count as incorrect.
func ComputeScore(set QuizSet, answers map[int]int) int {
	score := 0
	for i, item := range set.Items {
		selected, ok := answers[i]
		if ok && item.IsCorrect(selected) {
			score++
		}
	}
	return score
}
