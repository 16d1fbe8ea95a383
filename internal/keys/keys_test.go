package keys

import "testing"

func TestDeckKeyFromCardNames(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"Doge"}, "doge"},
		{"trims and lowers", []string{"  Grumpy Cat  "}, "grumpy_cat"},
		{"sorted", []string{"Zoidberg", "Doge"}, "doge_zoidberg"},
		{"order independent", []string{"Doge", "Zoidberg"}, "doge_zoidberg"},
		{"blank entries skipped", []string{"", "  ", "Doge"}, "doge"},
		{"duplicates kept", []string{"Doge", "Doge"}, "doge_doge"},
	}
	for _, tc := range cases {
		if got := DeckKeyFromCardNames(tc.names); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
