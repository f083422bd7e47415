// Package types defines the shared data structures for the pokesave editor.
// This package contains only type definitions: no logic, no methods.
package types

// Document is one decoded save. The schema is open: every key the editor
// does not model is carried through untouched. Values are the ones
// produced by encoding/json with UseNumber (nil, bool, json.Number,
// string, []any, map[string]any) plus the plain Go ints, strings and
// bools written by editors.
type Document = map[string]any

// Top-level section keys.
const (
	KeyNew         = "new"
	KeyPlayer      = "player"
	KeyTeam        = "team"
	KeyBox         = "box"
	KeyArea        = "area"
	KeyShop        = "shop"
	KeyTeamManager = "teamManager"
	KeyGold        = "gold"
)

// PokemonList names one of the two ordered Pokémon sequences.
type PokemonList string

const (
	Team PokemonList = "team"
	Box  PokemonList = "box"
)

// Intent is the parsed representation of an editor command.
type Intent struct {
	Verb string
	Args []string
}

// Effect is a single atomic document edit instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after an effect replaced the document.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single editor step.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
	Err     error
}

// GameItem is an item, either equipped by a Pokémon or listed in the
// shop's item stock. The two are independent copies.
type GameItem struct {
	ID          string
	Name        []string
	Sprite      string
	Price       int
	Description []string
	Restriction map[string]any
}

// Pokemon is a read-only view of one team or box entry.
type Pokemon struct {
	SpecieKey  string
	Lvl        int
	IsShiny    bool
	HideShiny  bool
	Favorite   bool
	IsMega     bool
	TargetMode string
	Item       *GameItem // nil when no item is equipped
}

// Achievement is one entry of player.achievements.
type Achievement struct {
	Description []string
	Status      bool
	Image       string
}

// StatKind tags the JSON shape of a player.stats value.
type StatKind int

const (
	StatOther StatKind = iota
	StatNumber
	StatString
	StatArray
)

// StatValue is a tagged view of one player.stats entry.
type StatValue struct {
	Kind   StatKind
	Number float64
	Text   string
	List   []any
}

// Player is a read-only view of the player section with defaults filled.
type Player struct {
	Name                string
	Portrait            int
	Gold                int
	Stars               int
	TeamSlots           int
	ExtraGold           int
	Ribbons             int
	Records             []int
	Achievements        []Achievement
	AchievementProgress map[string]int
	Stats               map[string]StatValue
}

// Area is a read-only view of the area section.
type Area struct {
	RouteNumber int
	RouteWaves  []int
}

// Shop is a read-only view of the shop section. ItemStock keeps null
// entries as nil so indices line up with the document.
type Shop struct {
	EggPrice  int
	EggList   []string
	ItemList  []string
	ItemStock []*GameItem
}

// Pair is one (number, text) element of a flattened stats pair array.
type Pair struct {
	Num  float64
	Text string
}

// SlotKind distinguishes the synthetic egg slot from stock entries.
type SlotKind int

const (
	SlotEgg SlotKind = iota
	SlotItem
)

// ShopSlot is one cell of the rendered shop grid.
type ShopSlot struct {
	Kind  SlotKind
	Index int // index into itemStock; -1 for the egg slot
	Price int
	Item  *GameItem
}

// StarTotals is the derived star progress for a records sequence.
type StarTotals struct {
	Total int
	Max   int
}
