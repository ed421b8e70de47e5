package gamestate

// PlayerTarget is the damage target that always refers to the player character
const PlayerTarget = "player"

// Initialize fills in the permanent character details once creation is done.
// Race and background are always recorded, even when empty. Hit points start
// full. Location is left alone.
func (p *Player) Initialize(name, race, class, background string, maxHP, ac int) {
	p.Name = name
	p.Race = StringPtr(race)
	p.Class = class
	p.Background = StringPtr(background)
	p.HP = IntPtr(maxHP)
	p.MaxHP = maxHP
	p.AC = ac
}

// HasHP reports whether the sheet carries hit points
func (p *Player) HasHP() bool {
	return p != nil && p.HP != nil
}

// TakeDamage subtracts damage from the player's hit points. There is no floor;
// hit points may go negative. Callers must check HasHP first.
func (p *Player) TakeDamage(damage int) (oldHP, newHP int) {
	oldHP = *p.HP
	newHP = oldHP - damage
	p.HP = IntPtr(newHP)
	return oldHP, newHP
}
