// Package inventory keeps the player's potion stacks and equipment and
// implements the shop purchase rules.
package inventory

import (
	"errors"
	"fmt"
	"sync"

	"arena/internal/game"
)

var (
	// ErrEmpty is returned when a potion is consumed from an empty inventory.
	ErrEmpty = errors.New("no potions left")
	// ErrNotEnoughGold is returned when the player cannot afford an item.
	ErrNotEnoughGold = errors.New("not enough gold")
	// ErrUnsupportedItem is returned for item types the shop cannot apply.
	ErrUnsupportedItem = errors.New("unsupported item type")
)

// PotionStack is a count of identical potions. Stacks are removed as soon
// as their count reaches zero.
type PotionStack struct {
	Potion Item
	Count  int
}

// Inventory is safe for concurrent use.
type Inventory struct {
	mu      sync.RWMutex
	potions []PotionStack
	weapon  *Item
	armor   *Item
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// AddPotion stacks one potion, merging with an existing stack of the same item.
func (inv *Inventory) AddPotion(potion Item) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.addPotion(potion, 1)
}

func (inv *Inventory) addPotion(potion Item, n int) {
	for i := range inv.potions {
		if inv.potions[i].Potion.Name == potion.Name {
			inv.potions[i].Count += n
			return
		}
	}
	inv.potions = append(inv.potions, PotionStack{Potion: potion, Count: n})
}

// SetPotions replaces every stack with a single stack of n potions.
// n <= 0 clears the potions.
func (inv *Inventory) SetPotions(potion Item, n int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.potions = nil
	if n > 0 {
		inv.potions = append(inv.potions, PotionStack{Potion: potion, Count: n})
	}
}

// PeekFirstPotion reports the heal amount of the front stack.
func (inv *Inventory) PeekFirstPotion() (int, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if len(inv.potions) == 0 {
		return 0, false
	}
	return inv.potions[0].Potion.HealAmount, true
}

// ConsumePotion removes one potion from the front stack.
func (inv *Inventory) ConsumePotion() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if len(inv.potions) == 0 {
		return ErrEmpty
	}
	inv.potions[0].Count--
	if inv.potions[0].Count <= 0 {
		inv.potions = inv.potions[1:]
	}
	return nil
}

// PotionCount sums every stack.
func (inv *Inventory) PotionCount() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	n := 0
	for _, s := range inv.potions {
		n += s.Count
	}
	return n
}

// Stacks returns a copy of the potion stacks.
func (inv *Inventory) Stacks() []PotionStack {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]PotionStack, len(inv.potions))
	copy(out, inv.potions)
	return out
}

// Equipped returns the names of the equipped weapon and armor.
func (inv *Inventory) Equipped() (weapon, armor string) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if inv.weapon != nil {
		weapon = inv.weapon.Name
	}
	if inv.armor != nil {
		armor = inv.armor.Name
	}
	return weapon, armor
}

// Buy pays for item with the player's gold and applies it: potions are
// stacked, weapons and armor replace the previous piece and its bonuses.
func (inv *Inventory) Buy(player *game.Combatant, item Item) error {
	if player.Gold < item.Price {
		return fmt.Errorf("buy %s: %w", item.Name, ErrNotEnoughGold)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()

	switch item.Type {
	case TypePotion:
		inv.addPotion(item, 1)
	case TypeWeapon:
		if inv.weapon != nil {
			player.Attack -= inv.weapon.AttackBonus
		}
		w := item
		inv.weapon = &w
		player.Attack += item.AttackBonus
	case TypeArmor:
		if inv.armor != nil {
			player.Defense -= inv.armor.DefenseBonus
			player.MaxHP -= inv.armor.MaxHPBonus
		}
		a := item
		inv.armor = &a
		player.Defense += item.DefenseBonus
		player.MaxHP += item.MaxHPBonus
		player.CurrentHP += item.MaxHPBonus
		player.CurrentHP = max(1, min(player.CurrentHP, player.MaxHP))
	default:
		return fmt.Errorf("buy %s: %w", item.Name, ErrUnsupportedItem)
	}
	player.Gold -= item.Price
	return nil
}

// SetEquipped records item as the equipped weapon or armor without touching
// the player's stats. It is used on load, where the saved stats already
// include the bonus.
func (inv *Inventory) SetEquipped(item Item) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	it := item
	switch item.Type {
	case TypeWeapon:
		inv.weapon = &it
	case TypeArmor:
		inv.armor = &it
	default:
		return fmt.Errorf("equip %s: %w", item.Name, ErrUnsupportedItem)
	}
	return nil
}
