package librarian

// KeywordClassifier sorts free-form page keywords into canonical keyword
// groups. Implementations normalize casing and whitespace and map synonym
// forms onto canonical keywords.
type KeywordClassifier interface {
	// FilterByGroup returns the canonical forms of the input keywords
	// that belong to the named group, in input order. Keywords outside
	// the group are dropped. An unrecognized group name fails with
	// EINVALID.
	FilterByGroup(keywords []string, group string) ([]string, error)

	// Groups returns the known group names.
	Groups() []string
}

// ClassifyKeywords runs FilterByGroup for every known group and collects the
// non-empty results by group name.
func ClassifyKeywords(classifier KeywordClassifier, keywords []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, group := range classifier.Groups() {
		matched, err := classifier.FilterByGroup(keywords, group)
		if err != nil {
			return nil, err
		}
		if len(matched) > 0 {
			out[group] = matched
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
