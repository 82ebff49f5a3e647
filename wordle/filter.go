package wordle

// ComputeFeedback returns the colors the game shows for guess when the secret is secret.
//
// For each distinct letter of the guess the positions shared with the secret are green.
// Of the remaining positions of that letter in the guess, the earliest ones are yellow,
// as many as the secret has copies of the letter not already matched by a green.
// Everything else is gray.  For example oooll against llool is yellow gray green yellow green.
func ComputeFeedback(guess, secret Word) Feedback {
	var answer Feedback
	for _, lp := range guess.letters {
		secretPositions := secret.Positions(lp.letter)
		if secretPositions.None() {
			continue
		}

		greens := lp.positions.Intersection(secretPositions)
		for _, position := range greens.Range {
			answer[position] = Correct
		}

		yellows := min(lp.positions.Count(), secretPositions.Count()) - greens.Count()
		for count, position := range lp.positions.Difference(greens).Range {
			if count >= yellows {
				break
			}
			answer[position] = Present
		}
	}
	return answer
}
