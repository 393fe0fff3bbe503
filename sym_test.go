package gamess

import "testing"

func TestNormalizeSym(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"A1", "A1"},
		{"A1G", "A1g"},
		{"AG", "Ag"},
		{"B3U", "B3u"},
		{"A'", "A'"},
		{"A''", "A\""},
		{"B1''", "B1''"},
	}
	for _, test := range tests {
		got := NormalizeSym(test.in)
		if got != test.want {
			t.Errorf("NormalizeSym(%q): got %q, wanted %q\n",
				test.in, got, test.want)
		}
	}
}
