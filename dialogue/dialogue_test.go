package dialogue

import (
	"strings"
	"testing"
)

const sample = `
--- level1
[Elder][The fires have gone cold.\Lead the spirits home.]
[Spirit][We hear you.]

----- level2 -----
[Elder][Mind the swamp.]
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	lines := s.Lines("level1")
	if len(lines) != 2 {
		t.Fatalf("level1 has %d lines, want 2", len(lines))
	}
	if lines[0].Speaker != "Elder" || lines[0].Text != "The fires have gone cold.\nLead the spirits home." {
		t.Fatalf("unexpected first line %+v", lines[0])
	}
	if got := s.Lines(LevelTag(2)); len(got) != 1 || got[0].Text != "Mind the swamp." {
		t.Fatalf("level2 = %+v", got)
	}
	if s.Has("level3") || s.Lines("level3") != nil {
		t.Fatal("missing section should have no lines")
	}
	if tags := s.Tags(); len(tags) != 2 || tags[0] != "level1" || tags[1] != "level2" {
		t.Fatalf("Tags = %v", tags)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"text before section": "[Elder][hi]\n",
		"missing tag":         "---\n[Elder][hi]\n",
		"no phrase":           "--- a\n[Elder]\n",
		"unclosed":            "--- a\n[Elder][hi\n",
		"trailing text":       "--- a\n[Elder][hi] there\n",
		"repeated section":    "--- a\n--- a\n",
	}
	for name, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
