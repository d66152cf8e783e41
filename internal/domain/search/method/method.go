package method

// Method is the search strategy.
type Method string

// Search method constants.
const (
	// Keyword counts query token containment in the searchable text.
	Keyword Method = "keyword"
	// Fuzzy rewards trigram overlap for typo tolerance.
	Fuzzy Method = "fuzzy"
	// Semantic scores concept associations with simulated embedding noise.
	Semantic Method = "semantic"
)

// All lists the supported methods in dispatch order.
func All() []Method {
	return []Method{Keyword, Fuzzy, Semantic}
}

// IsValid checks if the method is one of the supported values.
func (m Method) IsValid() bool {
	return m == Keyword || m == Fuzzy || m == Semantic
}
