package genshin

// Requirement categories
const (
	RequirementCategoryAscension = "ascension"
	RequirementCategoryTalent    = "talent"
	RequirementCategoryPassive   = "passive"
)

// RequirementCategories lists every valid requirement category
var RequirementCategories = []string{
	RequirementCategoryAscension,
	RequirementCategoryTalent,
	RequirementCategoryPassive,
}

// OwnedCharacter tracks a character the player owns and the gear they
// settled on for it
type OwnedCharacter struct {
	CharacterName     string
	Level             int
	AscensionLevel    int
	Constellations    int
	ChosenWeapon      string
	ChosenArtifactSet string
	Notes             string
	UpdatedAt         int64
}

// MaterialStock tracks how many of a material the player holds
type MaterialStock struct {
	MaterialName  string
	QuantityOwned int
	UpdatedAt     int64
}

// MaterialRequirement records how much of a material a character still
// needs for one upgrade category
type MaterialRequirement struct {
	CharacterName string
	Category      string
	MaterialName  string
	Quantity      int
	Notes         string
}

// TalentProgress tracks current and target levels for one talent of an
// owned character
type TalentProgress struct {
	CharacterName string
	TalentName    string
	CurrentLevel  int
	TargetLevel   int
	Skip          bool
}

// MaterialSummary aggregates requirements against stock for one material
type MaterialSummary struct {
	MaterialName string
	Required     int
	Owned        int
	Missing      int
}
