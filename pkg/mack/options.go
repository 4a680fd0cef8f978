package mack

// Default sources delimiter. The documents this converter was built for mark
// their citation list with a bold 출처 ("sources") paragraph.
const (
	defaultSourcesMarker = "**출처**"
	defaultSourcesLabel  = "출처"
)

// Options configures the conversion. The zero value selects the canonical
// behavior for every choice.
type Options struct {
	// HeadingDecoration is prefixed to level-1 heading text when the text
	// consists only of ASCII and Hangul characters. Empty disables the
	// decoration.
	HeadingDecoration string

	// H2Section renders level-2 headings as a bold Section block instead of
	// a Header block. Either way the heading is preceded by a Divider.
	H2Section bool

	// SkipThematicBreaks drops thematic breaks instead of emitting a
	// Divider block for each.
	SkipThematicBreaks bool

	// StrictParagraphs folds paragraph children through the mrkdwn phrasing
	// renderer and the section merge rule, emitting inline images as
	// separate Image blocks. The default path concatenates raw child text
	// and strips leftover formatting markers, which is more forgiving of
	// malformed nesting.
	StrictParagraphs bool

	// SourcesMarker is the exact trimmed paragraph source that delimits the
	// sources section. SourcesLabel is the Header text emitted for it.
	SourcesMarker string
	SourcesLabel  string

	// List carries per-list rendering options.
	List ListOptions
}

// ListOptions configures list rendering. Reserved for per-list behavior.
type ListOptions struct{}

func (o Options) withDefaults() Options {
	if o.SourcesMarker == "" {
		o.SourcesMarker = defaultSourcesMarker
	}
	if o.SourcesLabel == "" {
		o.SourcesLabel = defaultSourcesLabel
	}
	return o
}
