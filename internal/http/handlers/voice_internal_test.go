package handlers

import (
	"testing"

	"forkcast/internal/modules/discovery"
)

func TestSpeechClean(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"**Luigi's** is great", "Luigi's is great"},
		{"Top pick:\n\n*Sakura*\nrated 4.5", "Top pick: Sakura rated 4.5"},
		{"  plain text  ", "plain text"},
		{"a\nb\nc", "a b c"},
	}
	for _, tc := range cases {
		if got := speechClean(tc.in); got != tc.want {
			t.Errorf("speechClean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestComposeSpokenReply(t *testing.T) {
	rating := 4.5
	list := []discovery.Restaurant{
		{Name: "Luigi's", Rating: &rating},
		{Name: "Sakura"},
		{Name: "El Toro"},
		{Name: "Fourth Place"},
	}

	got := composeSpokenReply(list)
	want := "I found 4 places. The top picks are Luigi's, Sakura, and El Toro. Luigi's is rated 4.5 stars."
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}

	if got := composeSpokenReply(nil); got == "" {
		t.Error("empty result should still produce a reply")
	}

	single := composeSpokenReply([]discovery.Restaurant{{Name: "Solo"}})
	if single != "I found 1 place. The best match is Solo." {
		t.Errorf("single reply = %q", single)
	}
}
