package mock

import "github.com/learnsearch/librarian"

var _ librarian.KeywordClassifier = (*KeywordClassifier)(nil)

// KeywordClassifier is a mock implementation of librarian.KeywordClassifier.
type KeywordClassifier struct {
	FilterByGroupFn func(keywords []string, group string) ([]string, error)
	GroupsFn        func() []string
}

func (c *KeywordClassifier) FilterByGroup(keywords []string, group string) ([]string, error) {
	return c.FilterByGroupFn(keywords, group)
}

func (c *KeywordClassifier) Groups() []string {
	return c.GroupsFn()
}
