// Package gamestate holds the character sheet, encounter and inventory that
// the dungeon master persists between turns.
package gamestate

import "encoding/json"

const (
	// DefaultName is used for the name and class of a fresh character sheet
	DefaultName = "Unknown"

	// DefaultLocation is where every new adventure begins
	DefaultLocation = "Triboar Trail"
)

var (
	gameStateKeys = []string{"player", "combat", "inventory"}
	playerKeys    = []string{"name", "race", "class", "background", "hp", "max_hp", "ac", "location"}
	combatKeys    = []string{"active", "round", "initiative_order", "enemies"}
)

// GameState is the root record persisted by the state store
type GameState struct {
	Player    *Player  `json:"player" yaml:"player"`
	Combat    *Combat  `json:"combat" yaml:"combat"`
	Inventory []string `json:"inventory" yaml:"inventory"`
	// Extra keeps top-level keys written by other tools
	Extra Extra `json:"-" yaml:"-"`
}

// Player is the single player character sheet
type Player struct {
	Name string `json:"name" yaml:"name"`
	// Race and Background are nil until the character is initialized
	Race       *string `json:"race,omitempty" yaml:"race,omitempty"`
	Class      string  `json:"class" yaml:"class"`
	Background *string `json:"background,omitempty" yaml:"background,omitempty"`
	// HP is nil when the stored sheet has no hit points at all
	HP       *int   `json:"hp,omitempty" yaml:"hp,omitempty"`
	MaxHP    int    `json:"max_hp" yaml:"max_hp"`
	AC       int    `json:"ac" yaml:"ac"`
	Location string `json:"location" yaml:"location"`
	Extra    Extra  `json:"-" yaml:"-"`
}

// Combat tracks the current encounter. Round and InitiativeOrder are
// reserved; no operation reads or writes them.
type Combat struct {
	Active          bool           `json:"active" yaml:"active"`
	Round           int            `json:"round" yaml:"round"`
	InitiativeOrder []string       `json:"initiative_order" yaml:"initiative_order"`
	Enemies         map[string]int `json:"enemies" yaml:"enemies"`
	Extra           Extra          `json:"-" yaml:"-"`
}

// NewDefault creates the state used when nothing usable is stored
func NewDefault() *GameState {
	return &GameState{
		Player: &Player{
			Name:     DefaultName,
			Class:    DefaultName,
			HP:       IntPtr(0),
			MaxHP:    0,
			AC:       0,
			Location: DefaultLocation,
		},
		Combat: &Combat{
			InitiativeOrder: []string{},
			Enemies:         map[string]int{},
		},
		Inventory: []string{},
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// StringPtr returns a pointer to v
func StringPtr(v string) *string {
	return &v
}

// AddItems appends items to the inventory in the order given. Duplicates are kept.
func (s *GameState) AddItems(items ...string) {
	s.Inventory = append(s.Inventory, items...)
}

// normalize repairs nil collections so a decoded record is always safe to mutate
func (s *GameState) normalize() {
	if s.Combat == nil {
		s.Combat = &Combat{}
	}
	if s.Combat.InitiativeOrder == nil {
		s.Combat.InitiativeOrder = []string{}
	}
	if s.Combat.Enemies == nil {
		s.Combat.Enemies = map[string]int{}
	}
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
}

type gameStateFields GameState

// MarshalJSON writes the modeled fields followed by any extra keys
func (s GameState) MarshalJSON() ([]byte, error) {
	object, err := json.Marshal(gameStateFields(s))
	if err != nil {
		return nil, err
	}
	return joinObject(object, s.Extra, gameStateKeys...)
}

// UnmarshalJSON decodes the modeled fields and keeps every other key
func (s *GameState) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	fields, extra, err := splitObject(data, gameStateKeys...)
	if err != nil {
		return err
	}

	decoded := GameState{Extra: extra}
	if raw, ok := fields["player"]; ok {
		if err := decodeField("player", raw, &decoded.Player); err != nil {
			return err
		}
	}
	if raw, ok := fields["combat"]; ok {
		if err := decodeField("combat", raw, &decoded.Combat); err != nil {
			return err
		}
	}
	if raw, ok := fields["inventory"]; ok {
		if err := decodeField("inventory", raw, &decoded.Inventory); err != nil {
			return err
		}
	}

	*s = decoded
	return nil
}

type playerFields Player

// MarshalJSON writes the sheet followed by any extra keys
func (p Player) MarshalJSON() ([]byte, error) {
	object, err := json.Marshal(playerFields(p))
	if err != nil {
		return nil, err
	}
	return joinObject(object, p.Extra, playerKeys...)
}

// UnmarshalJSON decodes the sheet. Whole numbers such as 12.0 are accepted
// for the integer fields.
func (p *Player) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	fields, extra, err := splitObject(data, playerKeys...)
	if err != nil {
		return err
	}

	decoded := Player{Extra: extra}
	for key, raw := range fields {
		switch key {
		case "name":
			err = decodeField(key, raw, &decoded.Name)
		case "race":
			err = decodeField(key, raw, &decoded.Race)
		case "class":
			err = decodeField(key, raw, &decoded.Class)
		case "background":
			err = decodeField(key, raw, &decoded.Background)
		case "hp":
			if !isNull(raw) {
				var hp int
				hp, err = decodeInt(key, raw)
				decoded.HP = &hp
			}
		case "max_hp":
			decoded.MaxHP, err = decodeInt(key, raw)
		case "ac":
			decoded.AC, err = decodeInt(key, raw)
		case "location":
			err = decodeField(key, raw, &decoded.Location)
		}
		if err != nil {
			return err
		}
	}

	*p = decoded
	return nil
}

type combatFields Combat

// MarshalJSON writes the encounter followed by any extra keys
func (c Combat) MarshalJSON() ([]byte, error) {
	object, err := json.Marshal(combatFields(c))
	if err != nil {
		return nil, err
	}
	return joinObject(object, c.Extra, combatKeys...)
}

// UnmarshalJSON decodes the encounter. Enemy HP may be any whole number.
func (c *Combat) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	fields, extra, err := splitObject(data, combatKeys...)
	if err != nil {
		return err
	}

	decoded := Combat{Extra: extra}
	for key, raw := range fields {
		switch key {
		case "active":
			err = decodeField(key, raw, &decoded.Active)
		case "round":
			decoded.Round, err = decodeInt(key, raw)
		case "initiative_order":
			err = decodeField(key, raw, &decoded.InitiativeOrder)
		case "enemies":
			decoded.Enemies, err = decodeEnemies(raw)
		}
		if err != nil {
			return err
		}
	}

	*c = decoded
	return nil
}

func decodeEnemies(raw []byte) (map[string]int, error) {
	var hps map[string]json.RawMessage
	if err := decodeField("enemies", raw, &hps); err != nil {
		return nil, err
	}
	if hps == nil {
		return nil, nil
	}

	enemies := make(map[string]int, len(hps))
	for name, hp := range hps {
		value, err := decodeInt("enemies."+name, hp)
		if err != nil {
			return nil, err
		}
		enemies[name] = value
	}
	return enemies, nil
}
