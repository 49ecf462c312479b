package genshinblue

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
)

// titleCase renders a lowercase word or phrase for display
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// nameFromSlug renders "hu-tao" as "Hu Tao"
func nameFromSlug(slug string) string {
	return titleCase(strings.ReplaceAll(strings.TrimSpace(slug), "-", " "))
}

// slugFromPath returns the last path segment that is not a sequence
// index
func slugFromPath(path []string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if _, err := strconv.Atoi(path[i]); err != nil {
			return path[i]
		}
	}
	return ""
}

// firstPresent returns the first of the named fields that exists
func firstPresent(fields Value, names ...string) (Value, bool) {
	for _, n := range names {
		if v, ok := fields.Get(n); ok {
			return v, true
		}
	}
	return Value{}, false
}

// stringField returns the first non-empty string among the named fields
func stringField(fields Value, names ...string) (string, bool) {
	for _, n := range names {
		v, ok := fields.Get(n)
		if !ok {
			continue
		}
		s, ok := v.Str()
		if !ok {
			continue
		}
		if t := strings.TrimSpace(s); t != "" {
			return t, true
		}
	}
	return "", false
}

// intField parses the first of the named fields that holds an integer
func intField(fields Value, names ...string) (int, bool) {
	for _, n := range names {
		v, ok := fields.Get(n)
		if !ok {
			continue
		}
		if parsed, ok := parseInt(v); ok {
			return parsed, true
		}
	}
	return 0, false
}

// parseInt accepts JSON numbers and numeric strings. Upstream rarity
// has shipped as both.
func parseInt(v Value) (int, bool) {
	if v.Kind() != KindScalar {
		return 0, false
	}
	switch s := v.Scalar().(type) {
	case json.Number:
		if n, err := s.Int64(); err == nil {
			return int(n), true
		}
		if f, err := s.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// rarityOr parses a positive rarity, falling back to the type default.
// Malformed rarity never fails an item.
func rarityOr(def int, fields Value) int {
	if n, ok := intField(fields, "rarity"); ok && n > 0 {
		return n
	}
	return def
}

// stringList normalizes a value into non-empty strings: a string
// becomes a singleton, a sequence keeps its string elements, anything
// else contributes nothing
func stringList(v Value) []string {
	switch v.Kind() {
	case KindScalar:
		if s, ok := v.Str(); ok {
			if t := strings.TrimSpace(s); t != "" {
				return []string{t}
			}
		}
	case KindSequence:
		var out []string
		for _, el := range v.Items() {
			if s, ok := el.Str(); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	}
	return nil
}

// joinUnique deduplicates fragments preserving first-seen order and
// joins them with ", "
func joinUnique(fragments []string) string {
	seen := make(map[string]struct{}, len(fragments))
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return strings.Join(out, ", ")
}

// itemName resolves the record name: the explicit name field first,
// then a title-cased render of the slug. False means the item has no
// usable name and the caller drops it.
func itemName(item RawItem, fallbackSlug string) (string, bool) {
	if name, ok := stringField(item.Fields, "name"); ok {
		return name, true
	}
	slug := fallbackSlug
	if slug == "" {
		slug = slugFromPath(item.Path)
	}
	if slug == "" {
		return "", false
	}
	return nameFromSlug(slug), true
}

// sourceOf resolves a source string through the fallback chain: a boss
// area named in the path wins outright, then a region-grouping first
// path segment, then the item's own source-bearing fields merged with
// whatever the walk inherited from enclosing nodes.
func sourceOf(item RawItem, vocab *Vocabulary) string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if boss, ok := vocab.bossFor(item.Path); ok {
		return boss
	}
	if region, ok := vocab.regionFor(item.Path); ok {
		return region
	}

	var fragments []string
	collect := func(names ...string) {
		for _, n := range names {
			v, ok := item.Fields.Get(n)
			if !ok {
				continue
			}
			fragments = append(fragments, stringList(v)...)
		}
	}
	collect("source", "sources")
	fragments = append(fragments, item.Inherited...)
	collect("obtain", "obtainedFrom", "domain", "dropDomain", "location", "region")

	return joinUnique(fragments)
}

// buildCharacter maps a discovered item onto a Character. fallbackSlug
// names the record when the payload carries no name field, as the
// per-slug detail endpoints do.
func buildCharacter(item RawItem, fallbackSlug string) *genshin.Character {
	name, ok := itemName(item, fallbackSlug)
	if !ok {
		return nil
	}

	element := ""
	if raw, ok := stringField(item.Fields, "vision", "element"); ok {
		element = genshin.NormalizeElement(raw)
	}

	weaponType := ""
	if raw, ok := stringField(item.Fields, "weapon", "weapon_type"); ok {
		weaponType = strings.ToLower(strings.TrimSpace(raw))
	}

	description, _ := stringField(item.Fields, "description")

	return &genshin.Character{
		Name:        name,
		Element:     element,
		WeaponType:  weaponType,
		Rarity:      rarityOr(genshin.DefaultCharacterRarity, item.Fields),
		Description: description,
	}
}

// buildCharacterPayload builds the character plus everything embedded
// in its detail payload
func buildCharacterPayload(item RawItem, fallbackSlug string) *genshin.CharacterPayload {
	character := buildCharacter(item, fallbackSlug)
	if character == nil {
		return nil
	}
	return &genshin.CharacterPayload{
		Character:               character,
		Talents:                 buildTalents(item.Fields),
		WeaponRecommendations:   buildRecommendations(item.Fields, "recommended_weapons", "weapons"),
		ArtifactRecommendations: buildRecommendations(item.Fields, "recommended_artifacts", "artifacts"),
	}
}

// buildWeapon maps a discovered item onto a Weapon
func buildWeapon(item RawItem, fallbackSlug string, vocab *Vocabulary) *genshin.Weapon {
	name, ok := itemName(item, fallbackSlug)
	if !ok {
		return nil
	}

	weaponType := ""
	if raw, ok := stringField(item.Fields, "type", "weapon_type"); ok {
		weaponType = strings.ToLower(strings.TrimSpace(raw))
	}

	description, _ := stringField(item.Fields, "description")

	return &genshin.Weapon{
		Name:        name,
		WeaponType:  weaponType,
		Rarity:      rarityOr(genshin.DefaultWeaponRarity, item.Fields),
		Source:      sourceOf(item, vocab),
		Description: description,
	}
}

// buildArtifactSet maps a discovered item onto an ArtifactSet
func buildArtifactSet(item RawItem, fallbackSlug string) *genshin.ArtifactSet {
	name, ok := itemName(item, fallbackSlug)
	if !ok {
		return nil
	}

	two, _ := stringField(item.Fields, "2-piece_bonus", "two_piece_bonus")
	four, _ := stringField(item.Fields, "4-piece_bonus", "four_piece_bonus")

	return &genshin.ArtifactSet{
		Name:           name,
		TwoPieceBonus:  two,
		FourPieceBonus: four,
	}
}

// buildMaterial maps a discovered item onto a Material. typeValue, when
// non-empty, pins the Type; per-category fetches pass the category key.
// Otherwise the item's own type fields decide, defaulting to general.
func buildMaterial(item RawItem, typeValue string, vocab *Vocabulary) *genshin.Material {
	name, ok := itemName(item, "")
	if !ok {
		return nil
	}

	typ := typeValue
	if typ == "" {
		if raw, ok := stringField(item.Fields, "type", "category", "material_type"); ok {
			typ = strings.ToLower(strings.TrimSpace(raw))
		} else {
			typ = "general"
		}
	}

	return &genshin.Material{
		Name:   name,
		Type:   typ,
		Rarity: rarityOr(genshin.DefaultMaterialRarity, item.Fields),
		Source: sourceOf(item, vocab),
	}
}

// buildTalents extracts talents from a character payload. They have
// appeared under talents or skills, as a list or as a mapping taken
// positionally. An explicit talent_priority list overrides positional
// priority, matched case-insensitively.
func buildTalents(fields Value) []*genshin.Talent {
	container, ok := firstPresent(fields, "talents", "skills")
	if !ok {
		return nil
	}

	type rawTalent struct {
		name        string
		description string
	}
	var raws []rawTalent

	switch container.Kind() {
	case KindSequence:
		for _, el := range container.Items() {
			switch el.Kind() {
			case KindMapping:
				name, ok := stringField(el, "name")
				if !ok {
					continue
				}
				desc, _ := stringField(el, "description")
				raws = append(raws, rawTalent{name: name, description: desc})
			case KindScalar:
				if s, ok := el.Str(); ok {
					if t := strings.TrimSpace(s); t != "" {
						raws = append(raws, rawTalent{name: t})
					}
				}
			}
		}
	case KindMapping:
		for _, key := range container.Keys() {
			el, _ := container.Get(key)
			if el.Kind() != KindMapping {
				continue
			}
			name, ok := stringField(el, "name")
			if !ok {
				name = nameFromSlug(key)
			}
			desc, _ := stringField(el, "description")
			raws = append(raws, rawTalent{name: name, description: desc})
		}
	default:
		return nil
	}

	priorities := priorityList(fields)
	talents := make([]*genshin.Talent, 0, len(raws))
	for i, rt := range raws {
		priority := i + 1
		if p, ok := priorities[strings.ToLower(rt.name)]; ok {
			priority = p
		}
		talents = append(talents, &genshin.Talent{
			Name:        rt.name,
			Description: rt.description,
			Priority:    priority,
		})
	}
	return talents
}

// priorityList reads the explicit talent ordering, keyed by lowercased
// talent name, valued with the 1-based position in the list
func priorityList(fields Value) map[string]int {
	out := make(map[string]int)
	for _, field := range []string{"talent_priority", "priority"} {
		v, ok := fields.Get(field)
		if !ok {
			continue
		}
		names := stringList(v)
		if len(names) == 0 {
			continue
		}
		for i, n := range names {
			key := strings.ToLower(strings.TrimSpace(n))
			if _, seen := out[key]; !seen {
				out[key] = i + 1
			}
		}
		break
	}
	return out
}

// buildRecommendations extracts ranked names from whichever of the
// named fields is present. Upstream has shipped recommendations as a
// list of names, a list of objects, a ranked mapping and a bare
// string; ranking is densely 1-based in encounter order for all of
// them.
func buildRecommendations(fields Value, fieldNames ...string) []*genshin.Recommendation {
	container, ok := firstPresent(fields, fieldNames...)
	if !ok {
		return nil
	}

	var names []string
	switch container.Kind() {
	case KindScalar:
		if s, ok := container.Str(); ok {
			if t := strings.TrimSpace(s); t != "" {
				names = append(names, t)
			}
		}
	case KindSequence:
		for _, el := range container.Items() {
			switch el.Kind() {
			case KindScalar:
				if s, ok := el.Str(); ok {
					if t := strings.TrimSpace(s); t != "" {
						names = append(names, t)
					}
				}
			case KindMapping:
				if name, ok := stringField(el, "name", "title", "weapon"); ok {
					names = append(names, name)
				}
			}
		}
	case KindMapping:
		for _, key := range container.Keys() {
			el, _ := container.Get(key)
			if name := recommendationName(key, el); name != "" {
				names = append(names, name)
			}
		}
	}

	seen := make(map[string]struct{}, len(names))
	recs := make([]*genshin.Recommendation, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		recs = append(recs, &genshin.Recommendation{
			Name:    name,
			Ranking: len(recs) + 1,
		})
	}
	return recs
}

// recommendationName resolves one mapping entry to a name. Ranked
// mappings have shipped both ways round: name keyed to a score, and
// numeric rank keyed to a name.
func recommendationName(key string, el Value) string {
	if el.Kind() == KindMapping {
		if name, ok := stringField(el, "name", "title", "weapon"); ok {
			return name
		}
		return strings.TrimSpace(key)
	}
	if s, ok := el.Str(); ok {
		if _, err := strconv.Atoi(strings.TrimSpace(key)); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return strings.TrimSpace(key)
}
