package threads

import (
	"testing"

	"pressbox-service/internal/domain"
)

func TestIsGameThreadPost(t *testing.T) {
	cases := []struct {
		name  string
		title string
		flair string
		want  bool
	}{
		{"plain game thread", "Game Thread: Patriots @ Jets", "", true},
		{"single word form", "GAMETHREAD - Lakers vs Celtics", "", true},
		{"game day thread", "Game Day Thread: Week 5", "", true},
		{"gdt shorthand", "[GDT] Knicks at Nets", "", true},
		{"match thread", "Match Thread: Commanders vs Eagles", "", true},
		{"post game thread", "Post Game Thread: Jets fall to 1-4", "", true},
		{"postgame compact", "Postgame Thread: Warriors win", "", true},
		{"flair only", "Patriots @ Jets", "Game Thread", true},
		{"emoji decorated", "\U0001F3C8 GAME THREAD: Patriots @ Jets", "", true},
		{"injury news", "Breaking: QB out for the season", "News", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post := domain.Post{Title: tc.title, LinkFlair: tc.flair}
			if got := IsGameThreadPost(post); got != tc.want {
				t.Fatalf("IsGameThreadPost(%q, flair=%q) = %v, want %v", tc.title, tc.flair, got, tc.want)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Game Thread: Patriots (3-1) @ Jets (1-3)", "game thread patriots jets"},
		{"Post Game Thread: Lakers 112-108 Celtics", "post game thread lakers celtics"},
		{"GAME   THREAD!!!", "game thread"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeTitle(tc.in); got != tc.want {
			t.Fatalf("normalizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimilarTitles(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			"identical after record strip",
			"Game Thread: Patriots (3-1) @ Jets (1-3)",
			"Game Thread: Patriots (4-1) @ Jets (1-4)",
			true,
		},
		{
			"score updates collapse",
			"Post Game Thread: Lakers 99-95 Celtics",
			"Post Game Thread: Lakers 112-108 Celtics",
			true,
		},
		{
			"containment",
			"Game Thread: Patriots @ Jets",
			"Game Thread: Patriots @ Jets - 1:00 PM ET",
			true,
		},
		{
			"different games",
			"Game Thread: Patriots @ Jets",
			"Game Thread: Bills @ Dolphins",
			false,
		},
		{
			"empty never matches non-empty",
			"",
			"Game Thread: Patriots @ Jets",
			false,
		},
		{
			"both empty are equal",
			"",
			"",
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SimilarTitles(tc.a, tc.b); got != tc.want {
				t.Fatalf("SimilarTitles(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
