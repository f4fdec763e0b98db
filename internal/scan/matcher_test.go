package scan

import (
	"regexp"
	"strings"
	"testing"
)

func TestMatchLines_LineNumbers(t *testing.T) {
	re := regexp.MustCompile("TODO")
	content := []byte("one\ntwo\nTODO here\nfour\nand a TODO\n")

	got := MatchLines(re, content)
	want := []int{3, 5}
	if !equalInts(got, want) {
		t.Fatalf("MatchLines = %v, want %v", got, want)
	}
}

func TestMatchLines_NoMatch(t *testing.T) {
	re := regexp.MustCompile("absent")
	if got := MatchLines(re, []byte("nothing to see\n")); got != nil {
		t.Fatalf("MatchLines = %v, want nil", got)
	}
}

func TestMatchLines_SameLineNotDeduplicated(t *testing.T) {
	re := regexp.MustCompile("x")
	got := MatchLines(re, []byte("x and x and x\n"))
	want := []int{1, 1, 1}
	if !equalInts(got, want) {
		t.Fatalf("MatchLines = %v, want %v", got, want)
	}
}

func TestMatchLines_OffsetProperty(t *testing.T) {
	// A match preceded by n newlines lands on line n+1.
	for n := 0; n < 5; n++ {
		content := []byte(strings.Repeat("\n", n) + "match")
		got := MatchLines(regexp.MustCompile("match"), content)
		if len(got) != 1 || got[0] != n+1 {
			t.Errorf("n=%d: MatchLines = %v, want [%d]", n, got, n+1)
		}
	}
}

func TestMatchLines_CarriageReturnsIgnored(t *testing.T) {
	re := regexp.MustCompile("TODO")
	got := MatchLines(re, []byte("one\r\ntwo\r\nTODO\r\n"))
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("MatchLines = %v, want [3]", got)
	}
}

func TestMatchLines_FirstLine(t *testing.T) {
	got := MatchLines(regexp.MustCompile("^head"), []byte("head of file\n"))
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("MatchLines = %v, want [1]", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
