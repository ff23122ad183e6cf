package web

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"arena/internal/battle"
	"arena/internal/fx"
	"arena/internal/inventory"
	"arena/internal/run"
	"arena/internal/session"
)

// Seat is one browser's game: its run and the sinks its battles report to.
type Seat struct {
	Run     *run.Run
	Journal *fx.Journal
	Cues    *fx.CueBus
}

type Server struct {
	Seats   session.Store[*Seat]
	Tmpl    *template.Template
	Catalog *inventory.Catalog
	Synth   *fx.Synth

	// NewRun loads the run for a new seat; profile is the seat's cookie ID.
	NewRun func(ctx context.Context, profile string, bus battle.Bus) (*run.Run, error)

	// Drive feeds time into a started session. Nil runs a battle.Driver
	// on Tick until the session ends or BattleTimeout passes.
	Drive         func(*battle.Session)
	Tick          time.Duration
	BattleTimeout time.Duration

	// Log receives battle events as log lines when set.
	Log io.Writer
	// StaticDir holds optional drop-in assets (portraits/, audio/).
	StaticDir string
}

const cookieName = "arena_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	mux.HandleFunc("GET /battle", s.handleBattle)
	mux.HandleFunc("GET /battle/state", s.handleState)
	mux.HandleFunc("POST /battle/encounter", s.handleEncounter)
	mux.HandleFunc("POST /battle/attack", s.handleAttack)
	mux.HandleFunc("POST /battle/potion", s.handlePotion)
	mux.HandleFunc("POST /battle/flee", s.handleFlee)
	mux.HandleFunc("POST /battle/command", s.handleCommand)
	mux.HandleFunc("POST /shop/buy", s.handleBuy)

	mux.HandleFunc("/report.pdf", s.handleReport)
	mux.HandleFunc("/audio/", s.handleAudio)
	mux.HandleFunc("/portrait/", s.handlePortrait)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticBase()))))
	return mux
}

// ParseTemplates loads the page templates from dir.
func ParseTemplates(dir string) (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"percent": percent,
	}).ParseFiles(
		filepath.Join(dir, "layout.html"),
		filepath.Join(dir, "battle.html"),
	)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/battle", http.StatusFound)
}

// seat returns the caller's seat, creating the cookie and the run on the
// first visit.
func (s *Server) seat(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Seat, error) {
	id := s.sessionID(r)
	if id == "" {
		id = s.Seats.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s.Seats.GetOrCreate(ctx, id, func(ctx context.Context) (*Seat, error) {
		seat := &Seat{Journal: fx.NewJournal(0), Cues: &fx.CueBus{}}
		bus := fx.Multi{seat.Journal, seat.Cues}
		if s.Log != nil {
			bus = append(bus, fx.NewLogBus(s.Log))
		}
		if s.NewRun == nil {
			return nil, errors.New("no run factory configured")
		}
		rn, err := s.NewRun(ctx, id, bus)
		if err != nil {
			return nil, err
		}
		seat.Run = rn
		return seat, nil
	})
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// drive starts time for a freshly started session.
func (s *Server) drive(sess *battle.Session) {
	if s.Drive != nil {
		s.Drive(sess)
		return
	}
	timeout := s.BattleTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	d := battle.NewDriver(sess, s.Tick)
	go func() {
		defer cancel()
		d.Run(ctx)
		// An abandoned battle is ended so the seat can start another.
		sess.End()
	}()
}

func (s *Server) staticBase() string {
	if s.StaticDir == "" {
		return "static"
	}
	return s.StaticDir
}
