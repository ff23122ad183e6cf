// Package tui is the terminal front end: a tcell screen with single-key
// controls, and a line mode for dumb terminals and pipes.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/internal/battle"
	"arena/internal/fx"
	"arena/internal/inventory"
	"arena/internal/run"
)

const meterWidth = 40

var (
	styleText  = tcell.StyleDefault
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHP    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleXP    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleMeter = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCrit  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// App draws one run on a screen and maps keys to battle actions.
type App struct {
	screen  tcell.Screen
	run     *run.Run
	journal *fx.Journal
	cues    *fx.CueBus

	driver *battle.Driver
	heard  uint64
	msg    string
	quit   bool
}

// New returns an app for r. journal and cues must be wired into the bus r
// was loaded with.
func New(screen tcell.Screen, r *run.Run, journal *fx.Journal, cues *fx.CueBus) *App {
	a := &App{screen: screen, run: r, journal: journal, cues: cues}
	_, a.heard = cues.Last()
	return a
}

// Loop runs the event and render loop until the player quits or ctx ends.
// The screen must already be initialized; Loop finalizes it.
func (a *App) Loop(ctx context.Context, tick time.Duration) error {
	defer a.screen.Fini()
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	a.Tick(ctx, time.Now())
	for !a.quit {
		select {
		case <-ctx.Done():
			_, err := a.run.Finish(context.WithoutCancel(ctx))
			return err
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.HandleKey(ctx, ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}
			a.Draw()
		case now := <-ticker.C:
			a.Tick(ctx, now)
		}
	}
	_, err := a.run.Finish(ctx)
	return err
}

// Tick delivers elapsed time to the running battle, settles a finished one
// and redraws.
func (a *App) Tick(ctx context.Context, now time.Time) {
	if a.driver != nil {
		a.driver.Step(now)
	}
	if a.run.Settled() {
		a.driver = nil
		if _, err := a.run.Finish(ctx); err != nil {
			a.msg = "save failed: " + err.Error()
			log.Printf("settle battle: %v", err)
		}
	}
	if _, seq := a.cues.Last(); seq != a.heard {
		a.heard = seq
		_ = a.screen.Beep()
	}
	a.Draw()
}

// Quit reports whether the player asked to leave.
func (a *App) Quit() bool {
	return a.quit
}

// HandleKey applies one key press.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	a.msg = ""
	switch ev.Key() {
	case tcell.KeyEscape:
		a.togglePause()
		return
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	var err error
	switch ev.Rune() {
	case ' ', 'a':
		err = a.withSession(func(s *battle.Session) error {
			_, err := s.CommitAttack()
			return err
		})
	case 'p':
		err = a.withSession(func(s *battle.Session) error {
			_, err := s.UsePotion()
			return err
		})
	case 'f':
		err = a.withSession((*battle.Session).Flee)
	case 'n':
		err = a.fight(ctx)
	case 'b':
		var item string
		item, err = a.buy(ctx)
		if err == nil {
			a.msg = "Bought " + item + "!"
		}
	case 'q':
		a.quit = true
	}
	if err != nil {
		if m, ok := message(err); ok {
			a.msg = m
			return
		}
		a.msg = err.Error()
	}
}

func (a *App) withSession(fn func(*battle.Session) error) error {
	if a.driver != nil && a.driver.Paused() {
		return errPaused
	}
	s := a.run.Session()
	if s == nil {
		return battle.ErrInvalidStateTransition
	}
	return fn(s)
}

func (a *App) fight(ctx context.Context) error {
	s, err := a.run.Fight(ctx)
	if err != nil {
		return err
	}
	a.driver = battle.NewDriver(s, 0)
	return nil
}

func (a *App) buy(ctx context.Context) (string, error) {
	item, err := a.run.Buy(ctx, "")
	return item.Name, err
}

func (a *App) togglePause() {
	if a.driver == nil {
		return
	}
	if a.driver.Paused() {
		a.driver.Resume()
		return
	}
	a.driver.Pause()
	a.msg = "Paused. Press Esc to resume."
}

var errPaused = errors.New("paused")

// message turns a rule violation into a line for the player.
func message(err error) (string, bool) {
	switch {
	case errors.Is(err, errPaused):
		return "Paused. Press Esc to resume.", true
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
	}
	return "", false
}

// Draw renders the whole screen.
func (a *App) Draw() {
	a.screen.Clear()
	st := a.run.Status()
	p := st.Player

	y := 0
	a.text(0, y, styleTitle, fmt.Sprintf("%s  Lvl %d   Gold %d   Potions %d   Stage %d   Highscore %d",
		p.Name, p.Level, p.Gold, st.Potions, st.Stage, st.Highscore))
	y++
	a.bar(0, y, "HP", p.CurrentHP, p.MaxHP, styleHP)
	y++
	a.bar(0, y, "XP", p.CurrentXP, p.MaxXP, styleXP)
	y++
	a.text(0, y, styleText, fmt.Sprintf("ATK %d  DEF %d  Weapon %s  Armor %s",
		p.Attack, p.Defense, orNone(st.Weapon), orNone(st.Armor)))
	y += 2

	if s := a.run.Session(); s != nil {
		v := s.View()
		if v.Enemy != nil {
			a.text(0, y, styleTitle, v.Enemy.Name)
			y++
			a.bar(0, y, "HP", v.Enemy.CurrentHP, v.Enemy.MaxHP, styleHP)
			y++
		}
		a.text(0, y, styleDim, "phase: "+v.Phase.String())
		y++
		a.meter(0, y, v.TimingValue)
		y += 2
	} else if o := a.run.Outcome(); o != battle.PhaseIdle {
		a.text(0, y, styleTitle, "Last battle: "+o.String())
		y += 2
	} else {
		a.text(0, y, styleDim, "The arena is quiet.")
		y += 2
	}

	if a.msg != "" {
		a.text(0, y, styleCrit, a.msg)
	}
	y += 2

	lines := a.journal.Lines()
	_, h := a.screen.Size()
	room := max(0, h-y-2)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for _, line := range lines {
		a.text(0, y, styleText, line)
		y++
	}

	a.text(0, max(y, h-1), styleDim, "[space] attack  [p] potion  [f] flee  [n] next enemy  [b] buy potion  [esc] pause  [q] quit")
	a.screen.Show()
}

func (a *App) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) bar(x, y int, label string, cur, maxV int, style tcell.Style) {
	const width = 20
	filled := 0
	if maxV > 0 {
		filled = max(0, min(width, cur*width/maxV))
	}
	s := fmt.Sprintf("%s [%s%s] %d/%d", label, strings.Repeat("#", filled), strings.Repeat(".", width-filled), cur, maxV)
	a.text(x, y, style, s)
}

// meter draws the timing bar with the critical zone highlighted.
func (a *App) meter(x, y int, value float64) {
	pos := int(value * meterWidth / battle.MeterMax)
	critFrom := int(battle.CriticalThreshold * meterWidth / battle.MeterMax)
	a.screen.SetContent(x, y, '[', nil, styleText)
	for i := 0; i < meterWidth; i++ {
		style := styleMeter
		if i >= critFrom {
			style = styleCrit
		}
		r := '-'
		if i < pos {
			r = '='
		}
		a.screen.SetContent(x+1+i, y, r, nil, style)
	}
	a.screen.SetContent(x+1+meterWidth, y, ']', nil, styleText)
	a.text(x+meterWidth+3, y, styleText, fmt.Sprintf("%3.0f", value))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
