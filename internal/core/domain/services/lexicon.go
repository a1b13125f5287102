package services

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var aliasesYAML []byte

//go:embed phrases.yaml
var phrasesYAML []byte

// KeywordCluster ties a canonical catalog name to the colloquial keywords
// users say for it.
type KeywordCluster struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// AliasTable is the bilingual matching data: phrase translations plus
// keyword clusters per catalog kind.
type AliasTable struct {
	Translations map[string]string `yaml:"translations"`
	Keywords     struct {
		Dinners   []KeywordCluster `yaml:"dinners"`
		Styles    []KeywordCluster `yaml:"styles"`
		MenuItems []KeywordCluster `yaml:"menuItems"`
	} `yaml:"keywords"`

	// reverse is Translations inverted, built on load
	reverse map[string]string

	// orderedPhrases holds translation keys longest-first so multi-word
	// phrases replace before their substrings
	orderedPhrases []string
	orderedReverse []string
}

// Phrasebook is the data behind phrase heuristics: "add another" detection,
// the remove-last sentinel, ordinal words, and component action keywords.
type Phrasebook struct {
	AddAnother struct {
		Phrases  []string `yaml:"phrases"`
		Blockers []string `yaml:"blockers"`
	} `yaml:"addAnother"`
	RemoveLast struct {
		Sentinels []string `yaml:"sentinels"`
		Phrases   []string `yaml:"phrases"`
	} `yaml:"removeLast"`
	Ordinals struct {
		Words map[string]int `yaml:"words"`
	} `yaml:"ordinals"`
	ComponentActions struct {
		Remove []string `yaml:"remove"`
		Add    []string `yaml:"add"`
	} `yaml:"componentActions"`
}

// LoadAliasTable parses alias data from YAML.
func LoadAliasTable(data []byte) (*AliasTable, error) {
	var table AliasTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse alias table: %w", err)
	}

	table.reverse = make(map[string]string, len(table.Translations))
	for ko, en := range table.Translations {
		if _, exists := table.reverse[en]; !exists {
			table.reverse[en] = ko
		}
	}

	table.orderedPhrases = longestFirstKeys(table.Translations)
	table.orderedReverse = longestFirstKeys(table.reverse)
	return &table, nil
}

// DefaultAliasTable loads the alias data embedded in the binary.
func DefaultAliasTable() (*AliasTable, error) {
	return LoadAliasTable(aliasesYAML)
}

// LoadPhrasebook parses phrase data from YAML.
func LoadPhrasebook(data []byte) (*Phrasebook, error) {
	var book Phrasebook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parse phrasebook: %w", err)
	}
	return &book, nil
}

// DefaultPhrasebook loads the phrase data embedded in the binary.
func DefaultPhrasebook() (*Phrasebook, error) {
	return LoadPhrasebook(phrasesYAML)
}

func longestFirstKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
