package dialectic

import "strings"

// answerMarker is the literal opening token of a boxed final answer.
const answerMarker = `\boxed{`

// fallbackSuffixLen is how much trailing text is used when no marker is found.
const fallbackSuffixLen = 50

// ExtractAnswer parses the final answer out of free-form model output.
//
// It locates the last boxed answer in the text and returns the
// brace-balanced content after its marker, so nested constructs like
// f(x)=\boxed{2} survive intact rather than being cut at the first close
// brace. A marker nested inside another box's content never counts as the
// final answer on its own. If no marker is present, the trailing 50 runes
// are returned, stripped, so the result is never empty for non-empty
// input. If the braces never balance, the scan consumes to end of text.
func ExtractAnswer(text string) string {
	start := -1
	for idx := 0; ; {
		i := strings.Index(text[idx:], answerMarker)
		if i == -1 {
			break
		}
		start = idx + i
		end, _ := scanBox(text, start+len(answerMarker))
		idx = end
	}

	if start == -1 {
		runes := []rune(text)
		if len(runes) > fallbackSuffixLen {
			runes = runes[len(runes)-fallbackSuffixLen:]
		}
		return strings.TrimSpace(string(runes))
	}

	content := start + len(answerMarker)
	end, closed := scanBox(text, content)
	if closed {
		// end sits one past the closing brace.
		return strings.TrimSpace(text[content : end-1])
	}
	return strings.TrimSpace(text[content:])
}

// scanBox walks forward from just inside an open box with the balance
// counter seeded at 1. It returns the position one past the close brace
// that balances the box, or end of text when the box never closes.
func scanBox(text string, from int) (end int, closed bool) {
	balance := 1
	i := from
	for i < len(text) && balance > 0 {
		switch text[i] {
		case '{':
			balance++
		case '}':
			balance--
		}
		i++
	}
	return i, balance == 0
}

// normalizeAnswer case-folds an answer and removes all whitespace so that
// surface formatting differences do not break consensus.
func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
