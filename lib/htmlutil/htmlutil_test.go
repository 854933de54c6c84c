package htmlutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p>hot <b>rod</b> expo</p>`))
	if err != nil {
		t.Fatal(err)
	}
	got := GetText(doc)
	if got != "hot rod expo" {
		t.Fatalf("GetText = %q", got)
	}
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "  hello   world ", want: "hello world"},
		{in: "already clean", want: "already clean"},
		{in: "", want: ""},
	}
	for _, tc := range testCases {
		if got := CleanText(tc.in); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
