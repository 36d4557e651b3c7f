package interpreter

import "testing"

func TestClassify_KeywordPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "nightmare",
			text: "Мне приснился кошмар про падение",
			want: nightmareText,
		},
		{
			name: "nightmare outranks recurring",
			text: "У меня кошмары, которые повторяются",
			want: nightmareText,
		},
		{
			name: "recurring",
			text: "Этот сон повторяется каждую ночь",
			want: recurringText,
		},
		{
			name: "lucid",
			text: "Я видел осознанный сон и управлял им",
			want: lucidText,
		},
		{
			name: "case insensitive",
			text: "КОШМАР!",
			want: nightmareText,
		},
		{
			name: "no keyword falls back to default",
			text: "Я летал над городом",
			want: defaultText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "abc", "сон"} {
		if got := Classify(text); got == "" {
			t.Fatalf("Classify(%q) returned empty interpretation", text)
		}
	}
}
