// Package yaml provides the YAML-backed canonical keyword database.
package yaml

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/learnsearch/librarian"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var builtinKeywords []byte

// Ensure KeywordDB implements librarian.KeywordClassifier at compile time.
var _ librarian.KeywordClassifier = (*KeywordDB)(nil)

// keywordTable maps a canonical keyword to its alternate forms.
type keywordTable map[string][]string

// KeywordDB classifies free-form keywords into canonical keyword groups
// loaded from a YAML database.
type KeywordDB struct {
	groups map[string]keywordTable
}

// NewKeywordDB loads the built-in keyword database.
func NewKeywordDB() (*KeywordDB, error) {
	return ParseKeywordDB(builtinKeywords)
}

// ParseKeywordDB loads a keyword database from YAML. Each top-level key is
// a group; a group is a list of canonical keywords, where a keyword with
// alternate forms is a single-entry mapping from the canonical form to a
// list of alternates.
func ParseKeywordDB(data []byte) (*KeywordDB, error) {
	var raw map[string][]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, librarian.Errorf(librarian.EINVALID, "cannot parse keyword database: %v", err)
	}

	groups := make(map[string]keywordTable, len(raw))
	for group, items := range raw {
		table := make(keywordTable)
		for _, item := range items {
			switch item.Kind {
			case yaml.ScalarNode:
				var keyword string
				if err := item.Decode(&keyword); err != nil {
					return nil, librarian.Errorf(librarian.EINVALID, "invalid keyword in group %q: %v", group, err)
				}
				table[keyword] = nil
			case yaml.MappingNode:
				var entry map[string][]string
				if err := item.Decode(&entry); err != nil {
					return nil, librarian.Errorf(librarian.EINVALID, "invalid keyword entry in group %q: %v", group, err)
				}
				for keyword, alternates := range entry {
					table[keyword] = alternates
				}
			default:
				return nil, librarian.Errorf(librarian.EINVALID, "unexpected keyword entry in group %q", group)
			}
		}
		groups[group] = table
	}

	return &KeywordDB{groups: groups}, nil
}

// FilterByGroup returns the canonical forms of the input keywords that
// belong to the named group, in input order. Inputs are lowercased and
// trimmed before matching; alternate forms map to their canonical keyword.
func (db *KeywordDB) FilterByGroup(keywords []string, group string) ([]string, error) {
	table, ok := db.groups[group]
	if !ok {
		return nil, librarian.Errorf(librarian.EINVALID, "unknown keyword group %q", group)
	}

	var out []string
	for _, input := range keywords {
		input = strings.ToLower(strings.TrimSpace(input))
		if _, ok := table[input]; ok {
			out = append(out, input)
			continue
		}
		for keyword, alternates := range table {
			for _, alt := range alternates {
				if input == alt {
					out = append(out, keyword)
				}
			}
		}
	}
	return out, nil
}

// Groups returns the known group names in stable order.
func (db *KeywordDB) Groups() []string {
	names := make([]string, 0, len(db.groups))
	for name := range db.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
