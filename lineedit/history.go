package lineedit

// notBrowsing is the browse index of a History that is not being browsed.
const notBrowsing = -1

// History is the in-memory list of submitted lines, oldest first, plus a
// browse index used while the user walks it with Up and Down.
//
// Entries are never removed, merged or deduplicated. The browse index is
// either -1 (not browsing) or the index of a live entry.
type History struct {
	entries []string
	browse  int
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{browse: notBrowsing}
}

// Append adds line as the newest entry and stops browsing.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	h.browse = notBrowsing
}

// ResetBrowse stops browsing without changing the entries.
func (h *History) ResetBrowse() {
	h.browse = notBrowsing
}

// Previous moves to the next older entry and returns it. The first call
// after browsing stopped jumps to the newest entry; at the oldest entry it
// stays there. It reports false when there are no entries.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.browse == notBrowsing:
		h.browse = len(h.entries) - 1
	case h.browse > 0:
		h.browse--
	}
	return h.entries[h.browse], true
}

// Next moves to the next newer entry and returns it. Moving past the newest
// entry stops browsing and returns an empty line. It reports false when
// not browsing.
func (h *History) Next() (string, bool) {
	if h.browse == notBrowsing {
		return "", false
	}
	h.browse++
	if h.browse >= len(h.entries) {
		h.browse = notBrowsing
		return "", true
	}
	return h.entries[h.browse], true
}

// BrowseIndex returns the index of the entry being shown, or -1 when not
// browsing.
func (h *History) BrowseIndex() int {
	return h.browse
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
