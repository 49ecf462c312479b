package genshin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
)

func TestNormalizeElement(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase known", "pyro", "pyro"},
		{"capitalized known", "Pyro", "pyro"},
		{"uppercase known", "ELECTRO", "electro"},
		{"padded", "  cryo ", "cryo"},
		{"unknown", "quantum", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, genshin.NormalizeElement(tc.input))
		})
	}
}

func TestMaterialClass(t *testing.T) {
	testCases := []struct {
		name     string
		typ      string
		expected genshin.MaterialClass
	}{
		{"character ascension", "character-ascension", genshin.MaterialClassCharacter},
		{"boss drop", "boss-material", genshin.MaterialClassCharacter},
		{"local specialty", "local-specialties", genshin.MaterialClassCharacter},
		{"talent book", "talent-book", genshin.MaterialClassTalent},
		{"weapon ascension", "weapon-ascension", genshin.MaterialClassWeapon},
		{"weapon wins over ascension", "weapon-ascension-material", genshin.MaterialClassWeapon},
		{"common drop", "common", genshin.MaterialClassGeneral},
		{"empty", "", genshin.MaterialClassGeneral},
		{"mixed case", "Talent-Book", genshin.MaterialClassTalent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &genshin.Material{Name: "x", Type: tc.typ}
			assert.Equal(t, tc.expected, m.Class())
		})
	}
}
