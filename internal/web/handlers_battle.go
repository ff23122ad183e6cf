package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"arena/internal/battle"
	"arena/internal/command"
	"arena/internal/inventory"
	"arena/internal/run"
)

// GET /battle
func (s *Server) handleBattle(w http.ResponseWriter, r *http.Request) {
	seat, err := s.seat(r.Context(), w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	vm := s.makeViewModel(s.settle(r.Context(), seat), "")
	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", vm); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

// GET /battle/state is polled by the page while a battle runs.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	seat, err := s.seat(r.Context(), w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, s.makeViewModel(s.settle(r.Context(), seat), ""))
}

// POST /battle/encounter
func (s *Server) handleEncounter(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(ctx context.Context, seat *Seat) (string, error) {
		return "", s.fight(ctx, seat)
	})
}

// POST /battle/attack
func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, attack)
}

// POST /battle/potion
func (s *Server) handlePotion(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, drink)
}

// POST /battle/flee
func (s *Server) handleFlee(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, flee)
}

// POST /shop/buy
func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	name := r.FormValue("item")
	s.act(w, r, func(ctx context.Context, seat *Seat) (string, error) {
		return buy(ctx, seat, name)
	})
}

// POST /battle/command takes free text such as "atack" or "buy iron sword".
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	input := r.FormValue("cmd")
	s.act(w, r, func(ctx context.Context, seat *Seat) (string, error) {
		cmd, err := command.Parse(input)
		if err != nil {
			return "", err
		}
		switch cmd.Verb {
		case command.Attack:
			return attack(ctx, seat)
		case command.Potion:
			return drink(ctx, seat)
		case command.Flee:
			return flee(ctx, seat)
		case command.Fight:
			return "", s.fight(ctx, seat)
		case command.Buy:
			return buy(ctx, seat, cmd.Arg)
		case command.Status:
			st := seat.Run.Status()
			p := st.Player
			return fmt.Sprintf("Level %d, HP %d/%d, XP %d/%d, %d gold, %d potions",
				p.Level, p.CurrentHP, p.MaxHP, p.CurrentXP, p.MaxXP, p.Gold, st.Potions), nil
		case command.Help:
			return command.Usage(), nil
		case command.Quit:
			_, err := seat.Run.Finish(ctx)
			return "You leave the arena.", err
		}
		return "", command.ErrUnknown
	})
}

// act runs fn for the caller's seat and renders the battle fragment with
// the resulting message. Rule violations become player-facing messages.
func (s *Server) act(w http.ResponseWriter, r *http.Request, fn func(context.Context, *Seat) (string, error)) {
	ctx := r.Context()
	seat, err := s.seat(ctx, w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	msg, err := fn(ctx, seat)
	if err != nil {
		friendly, ok := playerMessage(err)
		if !ok {
			log.Printf("battle action: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		msg = friendly
	}
	s.render(w, s.makeViewModel(seat, msg))
}

func (s *Server) render(w http.ResponseWriter, vm BattleViewModel) {
	w.Header().Set("Cache-Control", "no-store")
	if err := s.Tmpl.ExecuteTemplate(w, "battle.html", vm); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

// settle finalizes a torn-down battle so its outcome is saved.
func (s *Server) settle(ctx context.Context, seat *Seat) *Seat {
	if seat.Run.Settled() {
		if _, err := seat.Run.Finish(ctx); err != nil {
			log.Printf("settle battle: %v", err)
		}
	}
	return seat
}

func (s *Server) fight(ctx context.Context, seat *Seat) error {
	sess, err := seat.Run.Fight(ctx)
	if err != nil {
		return err
	}
	s.drive(sess)
	return nil
}

func attack(_ context.Context, seat *Seat) (string, error) {
	sess := seat.Run.Session()
	if sess == nil {
		return "", battle.ErrInvalidStateTransition
	}
	_, err := sess.CommitAttack()
	return "", err
}

func drink(_ context.Context, seat *Seat) (string, error) {
	sess := seat.Run.Session()
	if sess == nil {
		return "", battle.ErrInvalidStateTransition
	}
	_, err := sess.UsePotion()
	return "", err
}

func flee(_ context.Context, seat *Seat) (string, error) {
	sess := seat.Run.Session()
	if sess == nil {
		return "", battle.ErrInvalidStateTransition
	}
	return "", sess.Flee()
}

func buy(ctx context.Context, seat *Seat, name string) (string, error) {
	item, err := seat.Run.Buy(ctx, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Bought %s!", item.Name), nil
}

func playerMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, battle.ErrNoPotions):
		return "No potions left!", true
	case errors.Is(err, battle.ErrInvalidStateTransition):
		return "Not now. Wait for your turn.", true
	case errors.Is(err, run.ErrBattleActive):
		return "Finish the battle first.", true
	case errors.Is(err, run.ErrUnknownItem):
		return "The shop has no such item.", true
	case errors.Is(err, inventory.ErrNotEnoughGold):
		return "Not enough gold!", true
	case errors.Is(err, command.ErrUnknown), errors.Is(err, command.ErrEmpty):
		return "Unknown command. Try: " + command.Usage(), true
	}
	return "", false
}
