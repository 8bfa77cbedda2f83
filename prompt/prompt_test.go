package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spektr-org/bikeshare/trips"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, Plain()), &out
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}

func TestAskStripsOnlyTerminator(t *testing.T) {
	p, out := newTestPrompter("  Yes \r\nsecond")

	got, err := p.Ask("Question? ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "  Yes " {
		t.Errorf("Ask = %q, want %q", got, "  Yes ")
	}
	if out.String() != "Question? " {
		t.Errorf("question written as %q", out.String())
	}

	got, err = p.Ask("")
	if err != nil || got != "second" {
		t.Errorf("unterminated last line = (%q, %v), want second", got, err)
	}

	if _, err := p.Ask(""); !errors.Is(err, ErrNoInput) {
		t.Errorf("Ask at EOF error = %v, want ErrNoInput", err)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		rejects int
	}{
		{"yes\n", true, 0},
		{" NO \n", false, 0},
		{"maybe\ny\nYes\n", true, 2},
	}
	for _, tt := range tests {
		p, out := newTestPrompter(tt.input)
		got, err := p.YesNo("Continue? ", "Please type yes or no.")
		if err != nil {
			t.Fatalf("YesNo(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("YesNo(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if n := strings.Count(out.String(), "Please type yes or no."); n != tt.rejects {
			t.Errorf("YesNo(%q) rejected %d times, want %d", tt.input, n, tt.rejects)
		}
	}
}

func TestYesNoEOF(t *testing.T) {
	p, _ := newTestPrompter("maybe\n")
	if _, err := p.YesNo("Continue? ", "again"); !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
}

func TestCollectSelection(t *testing.T) {
	input := strings.Join([]string{
		"boston",
		"  New York City ",
		"jun",
		"May",
		"someday",
		"ALL",
	}, "\n") + "\n"
	p, out := newTestPrompter(input)

	sel, err := CollectSelection(p, trips.DefaultRegistry())
	if err != nil {
		t.Fatalf("CollectSelection failed: %v", err)
	}

	want := trips.Selection{City: "new york city", Month: "may", Day: "all"}
	if sel != want {
		t.Errorf("selection = %+v, want %+v", sel, want)
	}

	transcript := out.String()
	if !strings.HasPrefix(transcript, greeting+"\n"+askCity) {
		t.Errorf("transcript should open with the greeting and city question, got:\n%s", transcript)
	}
	assertContains(t, transcript, invalidCity+"\n")
	assertContains(t, transcript, invalidMonth+"\n")
	assertContains(t, transcript, invalidDay+"\n")
	assertContains(t, transcript, introMonth+"\n"+askMonth)
	if !strings.HasSuffix(transcript, Rule+"\n") {
		t.Errorf("transcript should end with the separator, got:\n%s", transcript)
	}
}

func TestCollectSelectionNeverReturnsInvalid(t *testing.T) {
	p, _ := newTestPrompter("chicago\nsmarch\n")
	sel, err := CollectSelection(p, trips.DefaultRegistry())
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
	if sel != (trips.Selection{}) {
		t.Errorf("selection = %+v, want zero value", sel)
	}
}

func TestRenderKeepsSurroundingWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)
	got := p.render(p.question, "\nQuestion? ")
	if !strings.HasPrefix(got, "\n") || !strings.HasSuffix(got, " ") {
		t.Errorf("render = %q, want leading newline and trailing space kept", got)
	}
	assertContains(t, got, "Question?")
}
