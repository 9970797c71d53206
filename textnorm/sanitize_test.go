package textnorm

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ascii passthrough", "Hello, world_42!", "Hello, world_42!"},
		{"smart quotes", "“quoted” and ‘single’", `"quoted" and 'single'`},
		{"dashes", "pp. 3–7 — appendix", "pp. 3-7 - appendix"},
		{"ellipsis", "and so on…", "and so on..."},
		{"nbsp", "Figure 1", "Figure 1"},
		{"soft hyphen dropped", "arti­fact", "artifact"},
		{"accented letters kept", "Gödel, Erdős", "Gödel, Erdős"},
		{"ligature letters kept", "eﬃcient", "eﬃcient"},
		{"unknown symbols dropped", "a☃b", "ab"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}
