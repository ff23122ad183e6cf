package web

import (
	"net/http"

	"arena/internal/report"
)

// GET /report.pdf
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	seat, err := s.seat(r.Context(), w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.settle(r.Context(), seat)

	st := seat.Run.Status()
	p := st.Player
	outcome := ""
	if o := seat.Run.Outcome(); o.Terminal() {
		outcome = o.String()
	}
	pdf, err := report.Generate(report.Sheet{
		Name:       p.Name,
		Level:      p.Level,
		HP:         p.CurrentHP,
		MaxHP:      p.MaxHP,
		XP:         p.CurrentXP,
		MaxXP:      p.MaxXP,
		Attack:     p.Attack,
		Defense:    p.Defense,
		Gold:       p.Gold,
		Potions:    st.Potions,
		Weapon:     st.Weapon,
		Armor:      st.Armor,
		Encounters: st.Encounters,
		Stage:      st.Stage,
		Highscore:  st.Highscore,
		Outcome:    outcome,
		Journal:    seat.Journal.Lines(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="arena-report.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
