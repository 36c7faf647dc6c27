package summary

import "testing"

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic",
			input: "First sentence here. Second sentence follows. Third one ends",
			want:  []string{"First sentence here.", "Second sentence follows.", "Third one ends"},
		},
		{
			name:  "question and exclamation",
			input: "Is it done? It is done!",
			want:  []string{"Is it done?", "It is done!"},
		},
		{
			name:  "decimal not split",
			input: "Revenue was 3.5 million this year. Growth continued.",
			want:  []string{"Revenue was 3.5 million this year.", "Growth continued."},
		},
		{
			name:  "newline boundary",
			input: "Line one ends.\nLine two ends.",
			want:  []string{"Line one ends.", "Line two ends."},
		},
		{
			name:  "honorific not split",
			input: "Dr. Mehta reviewed the chart. Follow up in two weeks.",
			want:  []string{"Dr. Mehta reviewed the chart.", "Follow up in two weeks."},
		},
		{
			name:  "case number not split",
			input: "Case No. CV-2024-1138 is listed. Hearing follows soon.",
			want:  []string{"Case No. CV-2024-1138 is listed.", "Hearing follows soon."},
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitSentences(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContentSentences(t *testing.T) {
	text := "Short one. This sentence has enough words to pass. No. Another sufficiently long sentence here."
	got := contentSentences(text, 4)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 sentences", got)
	}
}
