package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello, world!", "Hello, world!"},
		{"strips symbols", "Price: $100 & 50% <off>", "Price 100 50 off"},
		{"collapses whitespace", "a  b\t\tc\n\nd", "a b c d"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCannedSummarizer_RejectsShortContent(t *testing.T) {
	s := NewCannedSummarizer()
	s.Latency = 0

	_, err := s.SummarizeContent(context.Background(), "")
	if !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("expected ErrContentTooShort for empty input, got %v", err)
	}

	_, err = s.SummarizeContent(context.Background(), "way too short")
	if !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("expected ErrContentTooShort for short input, got %v", err)
	}
}

func TestCannedSummarizer_KeywordSelection(t *testing.T) {
	s := NewCannedSummarizer()
	s.Latency = 0
	ctx := context.Background()

	content := strings.Join([]string{
		"Title: Cloud Computing Trends and Strategies",
		"Publisher: Cloud Tech Today",
		"Description: Explore the latest trends in cloud computing and cost optimization.",
	}, "\n\n")

	got, err := s.SummarizeContent(ctx, content)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !strings.Contains(got, "Multi-Cloud Strategies") {
		t.Fatalf("expected cloud summary, got %q", got[:min(len(got), 80)])
	}
}

func TestCannedSummarizer_GenericFallback(t *testing.T) {
	s := NewCannedSummarizer()
	s.Latency = 0

	content := strings.Join([]string{
		"Title: Gardening for Beginners",
		"Publisher: Green Thumb",
		"Description: Everything you need to know about growing tomatoes at home this year.",
	}, "\n\n")

	got, err := s.SummarizeContent(context.Background(), content)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got != genericSummary {
		t.Fatalf("expected generic summary, got %q", got[:min(len(got), 80)])
	}
}

func TestTitleLine(t *testing.T) {
	content := "Title: Some Episode\n\nPublisher: P\n\nDescription: D"
	if got := titleLine(content); got != "Some Episode" {
		t.Fatalf("titleLine = %q", got)
	}
	if got := titleLine("no title here"); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}
