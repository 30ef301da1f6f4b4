package domain

// NotAvailable is what front ends print in place of a missing snippet.
const NotAvailable = "N/A"

// Snippet is a named piece of text. Keyword is unique across the store.
type Snippet struct {
	// Keyword is the unique name the snippet is stored under.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Message is the stored text body.
	Message string `json:"message" yaml:"message"`
}

// Lookup is the result of reading a single keyword.
// Found is false when nothing is stored under Keyword; Message is then empty.
type Lookup struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Message string `json:"message" yaml:"message"`
	Found   bool   `json:"found" yaml:"found"`
}

// Found returns a Lookup for a stored snippet.
func Found(s Snippet) Lookup {
	return Lookup{Keyword: s.Keyword, Message: s.Message, Found: true}
}

// Missing returns a Lookup for a keyword with nothing stored against it.
func Missing(keyword string) Lookup {
	return Lookup{Keyword: keyword}
}

// Display returns the message, or NotAvailable when nothing was found.
func (l Lookup) Display() string {
	if !l.Found {
		return NotAvailable
	}
	return l.Message
}

// Messages extracts the message bodies from a list of snippets, preserving order.
func Messages(snippets []Snippet) []string {
	out := make([]string, 0, len(snippets))
	for i := range snippets {
		out = append(out, snippets[i].Message)
	}
	return out
}
