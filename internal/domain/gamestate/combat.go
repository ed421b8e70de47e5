package gamestate

import "sort"

// EnemyHit describes the outcome of damaging an enemy
type EnemyHit struct {
	Name        string
	Damage      int
	OldHP       int
	NewHP       int
	Killed      bool
	CombatEnded bool
}

// Start begins an encounter against the given enemies, replacing any that
// were already listed. The map is copied.
func (c *Combat) Start(enemies map[string]int) {
	c.Active = true
	c.Enemies = make(map[string]int, len(enemies))
	for name, hp := range enemies {
		c.Enemies[name] = hp
	}
}

// End stops the encounter and forgets every enemy
func (c *Combat) End() {
	c.Active = false
	c.Enemies = map[string]int{}
}

// HasEnemy reports whether name is a living enemy in an active encounter.
// Names are matched exactly.
func (c *Combat) HasEnemy(name string) bool {
	if c == nil || !c.Active {
		return false
	}
	_, ok := c.Enemies[name]
	return ok
}

// DamageEnemy applies damage to a living enemy. An enemy at zero or fewer hit
// points is removed, and the encounter ends once nobody is left.
func (c *Combat) DamageEnemy(name string, damage int) (*EnemyHit, bool) {
	if !c.HasEnemy(name) {
		return nil, false
	}

	hit := &EnemyHit{
		Name:   name,
		Damage: damage,
		OldHP:  c.Enemies[name],
	}
	hit.NewHP = hit.OldHP - damage

	if hit.NewHP <= 0 {
		delete(c.Enemies, name)
		hit.Killed = true
		if len(c.Enemies) == 0 {
			c.Active = false
			hit.CombatEnded = true
		}
		return hit, true
	}

	c.Enemies[name] = hit.NewHP
	return hit, true
}

// EnemyNames returns the enemy names in sorted order
func EnemyNames(enemies map[string]int) []string {
	names := make([]string, 0, len(enemies))
	for name := range enemies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
