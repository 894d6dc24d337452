// Package segment splits a feature description into plain-text and link runs.
package segment

import (
	"sort"
	"strings"
)

// Kind classifies a segment as plain text or an activatable link.
type Kind int

const (
	KindText Kind = iota
	KindLink
)

// Link names a literal substring of a description and the URL it points at.
type Link struct {
	Text string
	URL  string
}

// Segment is a contiguous run of a description. URL is set only for KindLink.
type Segment struct {
	Kind    Kind
	Content string
	URL     string
}

// span is a located link occurrence: [start, end) byte offsets in the description.
type span struct {
	start int
	end   int
	url   string
}

// Split locates every occurrence of every link's text inside description and
// returns the description as an ordered sequence of text and link segments.
//
// Occurrence search for a given link resumes one byte past the previous
// match's start, not past its end, so overlapping repeats are each found
// independently. Spans from all links are pooled and sorted by start offset;
// overlapping spans from different links are kept as-is and emitted as
// separate link segments. A link whose text never occurs contributes nothing.
func Split(description string, links []Link) []Segment {
	if len(links) == 0 {
		return []Segment{{Kind: KindText, Content: description}}
	}

	var spans []span
	for _, l := range links {
		if l.Text == "" {
			continue
		}
		from := 0
		for {
			i := strings.Index(description[from:], l.Text)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start: start, end: start + len(l.Text), url: l.URL})
			from = start + 1
		}
	}
	if len(spans) == 0 {
		return []Segment{{Kind: KindText, Content: description}}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	segments := make([]Segment, 0, 2*len(spans)+1)
	cursor := 0
	for _, sp := range spans {
		if cursor < sp.start {
			segments = append(segments, Segment{Kind: KindText, Content: description[cursor:sp.start]})
		}
		segments = append(segments, Segment{Kind: KindLink, Content: description[sp.start:sp.end], URL: sp.url})
		cursor = sp.end
	}
	if cursor < len(description) {
		segments = append(segments, Segment{Kind: KindText, Content: description[cursor:]})
	}
	return segments
}

// Join reassembles segment contents. For non-overlapping spans this
// reconstructs the original description exactly.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}
