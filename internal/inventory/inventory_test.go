package inventory

import (
	"errors"
	"testing"

	"arena/internal/game"
)

var (
	smallPotion = Item{Name: "Small Potion", Type: TypePotion, Price: 10, HealAmount: 25}
	bigPotion   = Item{Name: "Big Potion", Type: TypePotion, Price: 30, HealAmount: 60}
	sword       = Item{Name: "Sword", Type: TypeWeapon, Price: 50, AttackBonus: 4}
	axe         = Item{Name: "Axe", Type: TypeWeapon, Price: 80, AttackBonus: 7}
	mail        = Item{Name: "Mail", Type: TypeArmor, Price: 60, DefenseBonus: 3, MaxHPBonus: 20}
	leather     = Item{Name: "Leather", Type: TypeArmor, Price: 20, DefenseBonus: 1, MaxHPBonus: 5}
)

func TestPeekAndConsume(t *testing.T) {
	inv := New()

	if _, ok := inv.PeekFirstPotion(); ok {
		t.Error("Expected empty inventory to have no potion")
	}
	if err := inv.ConsumePotion(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}

	inv.AddPotion(smallPotion)
	inv.AddPotion(smallPotion)
	inv.AddPotion(bigPotion)

	heal, ok := inv.PeekFirstPotion()
	if !ok || heal != 25 {
		t.Errorf("Expected front potion healing 25, got %d (ok=%v)", heal, ok)
	}
	if inv.PotionCount() != 3 {
		t.Errorf("Expected 3 potions, got %d", inv.PotionCount())
	}

	for i := 0; i < 2; i++ {
		if err := inv.ConsumePotion(); err != nil {
			t.Fatalf("ConsumePotion: %v", err)
		}
	}
	// Front stack is removed once empty.
	if stacks := inv.Stacks(); len(stacks) != 1 || stacks[0].Potion.Name != "Big Potion" {
		t.Errorf("Expected only the big potion stack, got %+v", stacks)
	}
	heal, _ = inv.PeekFirstPotion()
	if heal != 60 {
		t.Errorf("Expected front potion healing 60, got %d", heal)
	}
}

func TestSetPotions(t *testing.T) {
	inv := New()
	inv.AddPotion(bigPotion)

	inv.SetPotions(smallPotion, 4)
	if inv.PotionCount() != 4 || len(inv.Stacks()) != 1 {
		t.Errorf("Expected a single stack of 4, got %+v", inv.Stacks())
	}

	inv.SetPotions(smallPotion, 0)
	if inv.PotionCount() != 0 {
		t.Errorf("Expected potions cleared, got %d", inv.PotionCount())
	}
}

func TestBuy_NotEnoughGold(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Gold = 5

	err := inv.Buy(p, smallPotion)

	if !errors.Is(err, ErrNotEnoughGold) {
		t.Errorf("Expected ErrNotEnoughGold, got %v", err)
	}
	if p.Gold != 5 || inv.PotionCount() != 0 {
		t.Errorf("Expected nothing to change, got gold %d potions %d", p.Gold, inv.PotionCount())
	}
}

func TestBuy_Potion(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Gold = 25

	if err := inv.Buy(p, smallPotion); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if p.Gold != 15 || inv.PotionCount() != 1 {
		t.Errorf("Expected 15 gold and 1 potion, got %d and %d", p.Gold, inv.PotionCount())
	}
}

func TestBuy_WeaponReplacesBonus(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Gold = 200

	if err := inv.Buy(p, sword); err != nil {
		t.Fatalf("Buy sword: %v", err)
	}
	if p.Attack != 14 {
		t.Errorf("Expected attack 14, got %d", p.Attack)
	}
	if err := inv.Buy(p, axe); err != nil {
		t.Fatalf("Buy axe: %v", err)
	}
	if p.Attack != 17 {
		t.Errorf("Expected attack 17 after swapping weapons, got %d", p.Attack)
	}
	if w, _ := inv.Equipped(); w != "Axe" {
		t.Errorf("Expected Axe equipped, got %q", w)
	}
	if p.Gold != 70 {
		t.Errorf("Expected 70 gold left, got %d", p.Gold)
	}
}

func TestBuy_ArmorReplacesBonus(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Gold = 200
	p.CurrentHP = 50

	if err := inv.Buy(p, mail); err != nil {
		t.Fatalf("Buy mail: %v", err)
	}
	if p.Defense != 8 || p.MaxHP != 120 || p.CurrentHP != 70 {
		t.Errorf("Expected defense 8 and 70/120 HP, got %d and %d/%d", p.Defense, p.CurrentHP, p.MaxHP)
	}
	if err := inv.Buy(p, leather); err != nil {
		t.Fatalf("Buy leather: %v", err)
	}
	if p.Defense != 6 || p.MaxHP != 105 {
		t.Errorf("Expected defense 6 and max HP 105, got %d and %d", p.Defense, p.MaxHP)
	}
	if p.CurrentHP > p.MaxHP || p.CurrentHP < 1 {
		t.Errorf("Expected HP within range, got %d/%d", p.CurrentHP, p.MaxHP)
	}
}

func TestBuy_Unsupported(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Gold = 100

	err := inv.Buy(p, Item{Name: "Ring", Type: TypeAccessory, Price: 10})
	if !errors.Is(err, ErrUnsupportedItem) {
		t.Errorf("Expected ErrUnsupportedItem, got %v", err)
	}
	if p.Gold != 100 {
		t.Errorf("Expected gold untouched, got %d", p.Gold)
	}
}

func TestSetEquipped_KeepsStats(t *testing.T) {
	inv := New()
	p := game.NewPlayer()
	p.Attack = 15
	sword := Item{Name: "Iron Sword", Type: TypeWeapon, AttackBonus: 5}

	if err := inv.SetEquipped(sword); err != nil {
		t.Fatalf("SetEquipped: %v", err)
	}
	if p.Attack != 15 {
		t.Errorf("Expected attack untouched at 15, got %d", p.Attack)
	}
	if w, _ := inv.Equipped(); w != "Iron Sword" {
		t.Errorf("Expected Iron Sword equipped, got %q", w)
	}

	p.Gold = 100
	if err := inv.Buy(p, Item{Name: "Steel Sword", Type: TypeWeapon, Price: 10, AttackBonus: 8}); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if p.Attack != 18 {
		t.Errorf("Expected restored bonus swapped out to 18, got %d", p.Attack)
	}
	if err := inv.SetEquipped(Item{Name: "Tonic", Type: TypePotion}); !errors.Is(err, ErrUnsupportedItem) {
		t.Errorf("Expected ErrUnsupportedItem, got %v", err)
	}
}
