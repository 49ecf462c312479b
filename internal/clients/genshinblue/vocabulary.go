package genshinblue

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DylanBreuer/GenshinTools/internal/errors"
)

// BossSource maps a path keyword to the boss it stands for. Entries are
// ordered; the first keyword found in an item's path wins.
type BossSource struct {
	Keyword string `yaml:"keyword"`
	Boss    string `yaml:"boss"`
}

// Vocabulary holds the hand-maintained source lookups. Upstream content
// grows faster than releases, so deployments can override the defaults
// with a YAML file instead of waiting for a code change.
type Vocabulary struct {
	BossSources []BossSource `yaml:"boss_sources"`
	Regions     []string     `yaml:"regions"`
}

// DefaultVocabulary returns the built-in boss table and region set
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		BossSources: []BossSource{
			{Keyword: "dvalin", Boss: "Stormterror"},
			{Keyword: "andrius", Boss: "Andrius"},
			{Keyword: "childe", Boss: "Childe"},
			{Keyword: "azhdaha", Boss: "Azhdaha"},
			{Keyword: "signora", Boss: "La Signora"},
			{Keyword: "raiden", Boss: "Raiden Shogun"},
			{Keyword: "scaramouche", Boss: "Scaramouche"},
			{Keyword: "apep", Boss: "Guardian of Apep"},
		},
		Regions: []string{
			"mondstadt",
			"liyue",
			"inazuma",
			"sumeru",
			"fontaine",
			"natlan",
			"snezhnaya",
		},
	}
}

// LoadVocabulary reads a vocabulary override from a YAML file
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read vocabulary file %s", path)
	}

	vocab := &Vocabulary{}
	if err := yaml.Unmarshal(data, vocab); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse vocabulary file %s", path)
	}
	return vocab, nil
}

// bossFor returns the boss name when the joined path mentions one of
// the known boss-area keywords
func (v *Vocabulary) bossFor(path []string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	joined := strings.ToLower(strings.Join(path, "/"))
	for _, bs := range v.BossSources {
		if bs.Keyword == "" {
			continue
		}
		if strings.Contains(joined, strings.ToLower(bs.Keyword)) {
			return bs.Boss, true
		}
	}
	return "", false
}

// regionFor returns the capitalized region when the path's first
// segment names one
func (v *Vocabulary) regionFor(path []string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	first := strings.ToLower(path[0])
	for _, r := range v.Regions {
		if first == strings.ToLower(r) {
			return titleCase(r), true
		}
	}
	return "", false
}
