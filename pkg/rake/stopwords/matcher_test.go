package stopwords

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

func TestNewMatcherEmptyList(t *testing.T) {
	if _, err := NewMatcher(nil); !errors.Is(err, internalerr.ErrMissingResource) {
		t.Errorf("NewMatcher(nil) error = %v, want ErrMissingResource", err)
	}
	if _, err := NewMatcher([]string{"", "  "}); !errors.Is(err, internalerr.ErrMissingResource) {
		t.Errorf("NewMatcher(blank words) error = %v, want ErrMissingResource", err)
	}
}

func TestCandidatesBasic(t *testing.T) {
	m := mustMatcher(t, []string{"the", "over"})

	got := m.Candidates("The quick brown fox jumps over the lazy dog")
	want := []string{"quick brown fox jumps", "lazy dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesCaseInsensitive(t *testing.T) {
	m := mustMatcher(t, []string{"the"})

	got := m.Candidates("THE Quick Fox")
	want := []string{"quick fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesHyphenCompoundNotSplit(t *testing.T) {
	m := mustMatcher(t, []string{"on", "an", "as"})

	// "as" must not split "as-needed"
	got := m.Candidates("on an as-needed basis")
	want := []string{"as-needed basis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesStopWordPrefixInsideWord(t *testing.T) {
	m := mustMatcher(t, []string{"can"})

	// "can" inside "candidate" must not split the word
	got := m.Candidates("candidate phrases")
	want := []string{"candidate phrases"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesLongerStopWordWins(t *testing.T) {
	m := mustMatcher(t, []string{"can", "cannot"})

	got := m.Candidates("they cannot fly")
	want := []string{"they", "fly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesQuotedRunDiscarded(t *testing.T) {
	m := mustMatcher(t, []string{"she", "said"})

	// a run beginning with a quote loses the quote and what trails it
	got := m.Candidates(`she said "extraordinary claims`)
	if len(got) != 0 {
		t.Errorf("Candidates() = %v, want empty", got)
	}
}

func TestCandidatesTrailingQuoteContentStripped(t *testing.T) {
	m := mustMatcher(t, []string{"said"})

	got := m.Candidates("said extraordinary " + "“" + "claims")
	want := []string{"extraordinary"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesEmptySentence(t *testing.T) {
	m := mustMatcher(t, []string{"the"})

	if got := m.Candidates("   "); len(got) != 0 {
		t.Errorf("Candidates(blank) = %v, want empty", got)
	}
}

func TestIsStop(t *testing.T) {
	m := mustMatcher(t, []string{"The", "over"})

	if !m.IsStop("the") || !m.IsStop("OVER") {
		t.Error("IsStop should match case-insensitively")
	}
	if m.IsStop("fox") {
		t.Error("IsStop should reject non-stop words")
	}
}

func TestDuplicateStopWords(t *testing.T) {
	m := mustMatcher(t, []string{"the", "the", "THE"})

	got := m.Candidates("the red fox")
	want := []string{"red fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func mustMatcher(t *testing.T, stops []string) *Matcher {
	t.Helper()
	m, err := NewMatcher(stops)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	return m
}
