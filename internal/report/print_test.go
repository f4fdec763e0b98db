package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rwblickhan/linty/internal/lint"
)

func testPrinter(input string, interactive bool) (*Printer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Printer{
		Out:         out,
		In:          strings.NewReader(input),
		Interactive: interactive,
		Messages:    map[string]string{"no-todo": "No TODOs allowed"},
	}, out
}

func warningReport() Report {
	return Partition([]lint.Violation{
		v("no-todo", lint.SeverityWarning, "a.txt", 3),
	})
}

func TestPrintWarnings_Format(t *testing.T) {
	p, out := testPrinter("", false)
	declined := p.PrintWarnings(warningReport().Warnings)
	if declined {
		t.Fatal("non-interactive printing must not decline")
	}
	got := out.String()
	want := "Found warning no-todo: No TODOs allowed\n" +
		"Warning present in file: a.txt, lines: 3\n"
	if got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrintWarnings_ConfirmAccepted(t *testing.T) {
	p, out := testPrinter("y\n", true)
	if declined := p.PrintWarnings(warningReport().Warnings); declined {
		t.Fatal("answering y must not decline")
	}
	if !strings.Contains(out.String(), "[y/n]") {
		t.Fatal("interactive mode should prompt")
	}
}

func TestPrintWarnings_ConfirmDeclined(t *testing.T) {
	p, _ := testPrinter("n\n", true)
	if declined := p.PrintWarnings(warningReport().Warnings); !declined {
		t.Fatal("answering n must decline")
	}
}

func TestPrintWarnings_RepromptsOnGarbage(t *testing.T) {
	p, out := testPrinter("maybe\nok\ny\n", true)
	if declined := p.PrintWarnings(warningReport().Warnings); declined {
		t.Fatal("eventual y must not decline")
	}
	if n := strings.Count(out.String(), "[y/n]"); n != 3 {
		t.Fatalf("prompted %d times, want 3", n)
	}
}

func TestPrintWarnings_ExhaustedInputDeclines(t *testing.T) {
	p, _ := testPrinter("", true)
	if declined := p.PrintWarnings(warningReport().Warnings); !declined {
		t.Fatal("EOF on the prompt must decline")
	}
}

func TestPrintWarnings_NoPromptAfterDecline(t *testing.T) {
	rep := Partition([]lint.Violation{
		v("no-todo", lint.SeverityWarning, "a.txt", 1),
		v("other", lint.SeverityWarning, "b.txt", 2),
	})
	p, out := testPrinter("n\n", true)
	p.Messages["other"] = "other message"
	if declined := p.PrintWarnings(rep.Warnings); !declined {
		t.Fatal("expected decline")
	}
	if n := strings.Count(out.String(), "[y/n]"); n != 1 {
		t.Fatalf("prompted %d times after decline, want 1", n)
	}
	// remaining groups still print
	if !strings.Contains(out.String(), "Found warning other: other message") {
		t.Fatal("remaining warnings should still be printed")
	}
}

func TestPrintErrors_Format(t *testing.T) {
	rep := Partition([]lint.Violation{
		v("no-todo", lint.SeverityError, "a.txt", 3, 7),
	})
	p, out := testPrinter("", true)
	p.PrintErrors(rep.Errors)
	got := out.String()
	want := "Found error no-todo: No TODOs allowed\n" +
		"Error present in file: a.txt, lines: 3, 7\n"
	if got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
	if strings.Contains(got, "[y/n]") {
		t.Fatal("errors must never prompt")
	}
}
