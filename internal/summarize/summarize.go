// Package summarize generates natural-language episode digests. All
// variants share the same contract: input is sanitized, under-length
// content is rejected before any remote call, and blank model output is
// reported as ErrEmptyResult.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// minContentLength is the sanitized-length floor below which content
// cannot be meaningfully summarized.
const minContentLength = 50

var (
	// ErrContentTooShort reports input under the minimum sanitized length.
	ErrContentTooShort = errors.New("content is too short to summarize")

	// ErrEmptyResult reports that the model returned no usable text.
	ErrEmptyResult = errors.New("empty response from model")

	// ErrUpstream reports a definitive model failure after retries exhausted.
	ErrUpstream = errors.New("summarization upstream failure")
)

// Summarizer is the port for turning episode content into a digest.
type Summarizer interface {
	SummarizeContent(ctx context.Context, content string) (string, error)
}

var (
	disallowedChars = regexp.MustCompile(`[^\w\s.,!?-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Sanitize strips characters outside a conservative allow-list and
// collapses whitespace, preparing text for the model prompt.
func Sanitize(text string) string {
	s := disallowedChars.ReplaceAllString(text, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// checkLength validates sanitized content against the minimum threshold.
func checkLength(sanitized string) error {
	if len(sanitized) < minContentLength {
		return fmt.Errorf("%w: %d characters after sanitizing", ErrContentTooShort, len(sanitized))
	}
	return nil
}

// buildPrompt wraps sanitized content in the fixed instruction template.
// The instruction structure is a contract with downstream display code;
// keep the numbered sections stable.
func buildPrompt(content string) string {
	return fmt.Sprintf(`You are an expert podcast summarizer. Please provide a comprehensive yet concise summary of the following podcast episode content.

Content to summarize:
%s

Please provide a summary that includes:
1. Main topics discussed
2. Key insights and takeaways
3. Important points mentioned
4. Overall theme and purpose

Format the summary in a clear, structured manner with bullet points where appropriate. Keep it informative but concise (around 200-300 words).

Summary:
`, content)
}
