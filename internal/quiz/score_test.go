package quiz

import "testing"

func fourAnswerQuiz() Quiz {
	return Quiz{
		Questions: []Question{
			{
				Text: "Which programming language are you learning?",
				Answers: []Answer{
					{Text: "JavaScript", IsCorrect: true},
					{Text: "Python"},
					{Text: "Java"},
					{Text: "C++"},
				},
			},
		},
	}
}

func TestScoreSingleQuestion(t *testing.T) {
	tests := []struct {
		name        string
		selections  Selections
		wantCorrect int
		wantPercent int
	}{
		{name: "correct answer", selections: Selections{0}, wantCorrect: 1, wantPercent: 100},
		{name: "wrong answer", selections: Selections{1}, wantCorrect: 0, wantPercent: 0},
		{name: "unanswered", selections: Selections{Unanswered}, wantCorrect: 0, wantPercent: 0},
		{name: "missing selection", selections: nil, wantCorrect: 0, wantPercent: 0},
		{name: "out of range", selections: Selections{9}, wantCorrect: 0, wantPercent: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Score(fourAnswerQuiz(), tc.selections)
			if result.Correct != tc.wantCorrect || result.Total != 1 {
				t.Fatalf("Score = %+v, want {Correct:%d Total:1}", result, tc.wantCorrect)
			}
			if result.Percent() != tc.wantPercent {
				t.Fatalf("Percent = %d, want %d", result.Percent(), tc.wantPercent)
			}
		})
	}
}

func TestScoreAllCorrectAndAllUnanswered(t *testing.T) {
	q := validQuiz()

	for _, selections := range []Selections{{1, 0}, {1, 1}} {
		all := Score(q, selections)
		if all.Correct != all.Total || all.Total != 2 {
			t.Fatalf("all-correct score for %v = %+v", selections, all)
		}
		if all.Percent() != 100 {
			t.Fatalf("all-correct percent for %v = %d, want 100", selections, all.Percent())
		}
	}

	none := Score(q, NewSelections(len(q.Questions)))
	if none.Correct != 0 || none.Total != 2 {
		t.Fatalf("unanswered score = %+v", none)
	}
}

func TestResultPercentRoundsHalfUp(t *testing.T) {
	tests := []struct {
		result Result
		want   int
	}{
		{Result{Correct: 1, Total: 3}, 33},
		{Result{Correct: 2, Total: 3}, 67},
		{Result{Correct: 1, Total: 8}, 13}, // 12.5
		{Result{Correct: 3, Total: 8}, 38}, // 37.5
		{Result{Correct: 0, Total: 0}, 0},
	}
	for _, tc := range tests {
		if got := tc.result.Percent(); got != tc.want {
			t.Fatalf("%+v.Percent() = %d, want %d", tc.result, got, tc.want)
		}
	}
}
