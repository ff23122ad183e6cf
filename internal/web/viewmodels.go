package web

import (
	"math"

	"arena/internal/battle"
	"arena/internal/game"
	"arena/internal/inventory"
	"arena/internal/run"
)

// BattleViewModel is everything the battle fragment renders.
type BattleViewModel struct {
	Status   run.Status
	InBattle bool
	Phase    string
	// CanAct is true while the player may attack, drink or flee.
	CanAct   bool
	Meter    int
	Critical bool
	Enemy    *game.Combatant
	Last     *battle.AttackResult
	Rewards  battle.Rewards
	Outcome  string
	Lines    []string
	Message  string
	Cue      string
	CueSeq   uint64
	Shop     []inventory.Item
}

func (s *Server) makeViewModel(seat *Seat, msg string) BattleViewModel {
	vm := BattleViewModel{
		Status:  seat.Run.Status(),
		Lines:   seat.Journal.Lines(),
		Message: msg,
	}
	vm.Cue, vm.CueSeq = seat.Cues.Last()
	if s.Catalog != nil {
		vm.Shop = s.Catalog.Items
	}

	if sess := seat.Run.Session(); sess != nil {
		v := sess.View()
		vm.InBattle = !v.Closed
		vm.Phase = v.Phase.String()
		vm.CanAct = v.Phase == battle.PhasePlayerAiming && v.Pending == battle.StepNone && !v.Closed
		vm.Meter = int(math.Round(v.TimingValue))
		vm.Critical = v.TimingValue >= battle.CriticalThreshold
		vm.Enemy = v.Enemy
		vm.Last = v.LastAttack
		vm.Rewards = v.Rewards
		if v.Phase.Terminal() {
			vm.Outcome = v.Phase.String()
		}
	} else if o := seat.Run.Outcome(); o != battle.PhaseIdle {
		vm.Outcome = o.String()
	}
	return vm
}

// percent returns cur/maxV as a whole percentage in [0, 100].
func percent(cur, maxV int) int {
	if maxV <= 0 {
		return 0
	}
	return max(0, min(100, cur*100/maxV))
}
