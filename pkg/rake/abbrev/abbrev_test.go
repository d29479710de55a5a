package abbrev

import (
	"reflect"
	"testing"
)

func TestFindValidAbbreviations(t *testing.T) {
	cases := []struct {
		text      string
		acronym   string
		expansion string
	}{
		{"this is a good abbreviation (TIAGA)", "TIAGA", "this is a good abbreviation"},
		{"this-is good (TIG)", "TIG", "this-is good"},
		{"alpha beta gamma (ABG) works", "ABG", "alpha beta gamma"},
	}

	for _, c := range cases {
		got := Find(c.text)
		if len(got) != 1 {
			t.Errorf("Find(%q) found %d abbreviations, want 1", c.text, len(got))
			continue
		}
		if got[0].Acronym != c.acronym {
			t.Errorf("Find(%q) acronym = %q, want %q", c.text, got[0].Acronym, c.acronym)
		}
		if got[0].Expansion != c.expansion {
			t.Errorf("Find(%q) expansion = %q, want %q", c.text, got[0].Expansion, c.expansion)
		}
	}
}

func TestFindInvalidAbbreviations(t *testing.T) {
	cases := []string{
		"this is not an abbreviation",
		"bad abbrevation lenth (TOOMANY)", // acronym longer than 6
		"not uppercase abbreviation (bad)",
		"contains space (go od)",
		"too short (TST)", // not enough preceding tokens
	}

	for _, text := range cases {
		if got := Find(text); len(got) != 0 {
			t.Errorf("Find(%q) = %v, want none", text, got)
		}
	}
}

func TestFindFirstOccurrenceWins(t *testing.T) {
	text := "alpha beta gamma (ABG) works. delta epsilon zeta (ABG) differs."
	got := Find(text)

	if len(got) != 1 {
		t.Fatalf("Find() found %d abbreviations, want 1", len(got))
	}
	if got[0].Expansion != "alpha beta gamma" {
		t.Errorf("Expansion = %q, want first occurrence", got[0].Expansion)
	}
}

func TestFindMultipleSentences(t *testing.T) {
	text := "alpha beta gamma (ABG) works. delta epsilon zeta (DEZ) also works."
	got := Find(text)

	if len(got) != 2 {
		t.Fatalf("Find() found %d abbreviations, want 2", len(got))
	}
	want := []Abbreviation{
		{Acronym: "ABG", Expansion: "alpha beta gamma"},
		{Acronym: "DEZ", Expansion: "delta epsilon zeta"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestFindStripsBareThe(t *testing.T) {
	// "the" tokens in the expansion span are dropped; words merely
	// containing the letters are untouched
	text := "launch of the weather system (TWS) today"
	got := Find(text)

	if len(got) != 1 {
		t.Fatalf("Find() found %d abbreviations, want 1", len(got))
	}
	if got[0].Expansion != "weather system" {
		t.Errorf("Expansion = %q, want %q", got[0].Expansion, "weather system")
	}
}

func TestFindNewlinesTreatedAsSpaces(t *testing.T) {
	text := "alpha beta\ngamma (ABG) works"
	got := Find(text)

	if len(got) != 1 {
		t.Fatalf("Find() found %d abbreviations, want 1", len(got))
	}
	if got[0].Acronym != "ABG" {
		t.Errorf("Acronym = %q, want ABG", got[0].Acronym)
	}
}

func TestSplitSentencesKeepsInitials(t *testing.T) {
	got := splitSentences("they sailed U.S. waters. the voyage ended.")
	want := []string{"they sailed U.S. waters.", "the voyage ended."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences() = %v, want %v", got, want)
	}
}

func TestSplitSentencesKeepsHonorifics(t *testing.T) {
	got := splitSentences("Dr. Smith agreed. the work continued.")
	want := []string{"Dr. Smith agreed.", "the work continued."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences() = %v, want %v", got, want)
	}
}

func TestFindEmptyInput(t *testing.T) {
	if got := Find(""); len(got) != 0 {
		t.Errorf("Find(\"\") = %v, want none", got)
	}
}
