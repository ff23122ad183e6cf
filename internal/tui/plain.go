package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"arena/internal/battle"
	"arena/internal/command"
	"arena/internal/fx"
	"arena/internal/run"
)

// Printer is a battle.Bus that prints each event as a line.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter prints to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Emit implements battle.Bus.
func (p *Printer) Emit(e battle.Event) {
	line := fx.Describe(e)
	if line == "" {
		return
	}
	p.Println(line)
}

// Println writes one line.
func (p *Printer) Println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}

// Plain runs a line-oriented game on in. The run's bus should include a
// Printer on out so battle events appear as they happen. Time runs in real
// time: the meter fills while the player types.
func Plain(ctx context.Context, in io.Reader, out *Printer, r *run.Run, tick time.Duration) error {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	p := &plain{run: r, out: out, tick: tick}
	defer p.stop()

	out.Println("Welcome to the arena. " + command.Usage())
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			break
		}
		if done, err := p.handle(ctx, sc.Text()); err != nil || done {
			if err != nil {
				return err
			}
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	_, err := r.Finish(context.WithoutCancel(ctx))
	return err
}

type plain struct {
	run    *run.Run
	out    *Printer
	tick   time.Duration
	cancel context.CancelFunc
}

// handle runs one command line. done is true when the player quits.
func (p *plain) handle(ctx context.Context, line string) (done bool, err error) {
	cmd, err := command.Parse(line)
	if errors.Is(err, command.ErrEmpty) {
		return false, nil
	}
	if err != nil {
		p.out.Println("Unknown command. Try: " + command.Usage())
		return false, nil
	}

	var msg string
	switch cmd.Verb {
	case command.Attack:
		err = p.act(ctx, func(s *battle.Session) error {
			_, err := s.CommitAttack()
			return err
		})
	case command.Potion:
		err = p.act(ctx, func(s *battle.Session) error {
			_, err := s.UsePotion()
			return err
		})
	case command.Flee:
		err = p.act(ctx, (*battle.Session).Flee)
	case command.Fight:
		err = p.fight(ctx)
	case command.Buy:
		item, berr := p.run.Buy(ctx, cmd.Arg)
		err = berr
		if err == nil {
			msg = "Bought " + item.Name + "!"
		}
	case command.Status:
		msg = statusLine(p.run.Status())
	case command.Help:
		msg = command.Usage()
	case command.Quit:
		return true, nil
	}
	if err != nil {
		if m, ok := message(err); ok {
			p.out.Println(m)
			return false, nil
		}
		return false, err
	}
	if msg != "" {
		p.out.Println(msg)
	}
	return false, nil
}

func (p *plain) fight(ctx context.Context) error {
	s, err := p.run.Fight(ctx)
	if err != nil {
		return err
	}
	p.stop()
	dctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	go battle.NewDriver(s, p.tick).Run(dctx)
	return nil
}

// act applies fn and waits until the battle is ready for the next command.
func (p *plain) act(ctx context.Context, fn func(*battle.Session) error) error {
	s := p.run.Session()
	if s == nil {
		return battle.ErrInvalidStateTransition
	}
	if err := fn(s); err != nil {
		return err
	}
	if !p.await(ctx, s) {
		return nil
	}
	phase, err := p.run.Finish(ctx)
	if err != nil {
		return err
	}
	p.stop()
	switch phase {
	case battle.PhaseDefeat:
		p.out.Println("You wake up in the infirmary. A new hero takes your place.")
	case battle.PhaseFled:
		p.out.Println("You escaped.")
	}
	return nil
}

// await blocks until s is aiming again or has torn down. It reports
// whether the battle is over.
func (p *plain) await(ctx context.Context, s *battle.Session) bool {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		v := s.View()
		if v.Closed {
			return true
		}
		if v.Phase == battle.PhasePlayerAiming && v.Pending == battle.StepNone {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-s.Done():
			return true
		case <-ticker.C:
		}
	}
}

func (p *plain) stop() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func statusLine(st run.Status) string {
	pl := st.Player
	return fmt.Sprintf("Level %d, HP %d/%d, XP %d/%d, %d gold, %d potions, stage %d, highscore %d",
		pl.Level, pl.CurrentHP, pl.MaxHP, pl.CurrentXP, pl.MaxXP, pl.Gold, st.Potions, st.Stage, st.Highscore)
}
