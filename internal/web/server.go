package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/comigor/unitconv-go/internal/convert"
	"github.com/comigor/unitconv-go/internal/history"
	"github.com/comigor/unitconv-go/internal/logger"
	"github.com/comigor/unitconv-go/internal/units"
)

const (
	sessionCookie = "uc_session"

	// displayCount is how many history lines the page shows.
	displayCount = 10

	defaultCategory = "Length"
)

// Server is the browser-facing shell over the converter: it renders the form,
// runs conversions and keeps the per-session history.
type Server struct {
	store *history.Store
	tmpl  *template.Template
}

// NewServer creates a web server backed by the given history store.
func NewServer(store *history.Store) *Server {
	return &Server{
		store: store,
		tmpl:  template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Routes returns the HTTP mux for the web shell.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/convert", s.handleConvert)
	mux.HandleFunc("/units", s.handleUnits)
	return mux
}

type pageData struct {
	Categories []string
	Category   string
	Units      []string
	From       string
	To         string
	Value      string
	Result     string
	History    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sid := s.session(w, r)

	category := r.URL.Query().Get("category")
	if category == "" {
		category = defaultCategory
	}
	s.renderPage(w, sid, pageData{Category: category, Value: "1"})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	sid := s.session(w, r)

	category := r.FormValue("category")
	from := r.FormValue("from")
	to := r.FormValue("to")
	raw := strings.TrimSpace(r.FormValue("value"))

	// An empty or unparseable value is the missing-input case.
	var value *float64
	if raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			value = &f
		}
	}

	res, err := convert.Convert(category, value, from, to)
	line := convert.Render(res, err)
	s.store.Append(sid, line)
	logger.L.Info("conversion", "session", sid, "category", category, "from", from, "to", to, "result", line)

	s.renderPage(w, sid, pageData{
		Category: category,
		From:     from,
		To:       to,
		Value:    raw,
		Result:   line,
	})
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	labels, err := units.ListUnits(r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	resp := struct {
		Category string   `json:"category"`
		Units    []string `json:"units"`
	}{r.URL.Query().Get("category"), labels}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.L.Error("failed to encode units response", "error", err)
	}
}

// session returns the caller's session ID, minting a cookie on first touch.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (s *Server) renderPage(w http.ResponseWriter, sid string, d pageData) {
	d.Categories = units.Names()
	labels, err := units.ListUnits(d.Category)
	if err != nil {
		logger.L.Warn("unknown category on page render", "category", d.Category)
	}
	d.Units = labels
	if len(labels) > 0 {
		if d.From == "" {
			d.From = labels[0]
		}
		if d.To == "" {
			if len(labels) > 1 {
				d.To = labels[1]
			} else {
				d.To = labels[0]
			}
		}
	}

	lines := make([]string, 0, displayCount)
	for _, e := range s.store.Recent(sid, displayCount) {
		lines = append(lines, e.Line)
	}
	d.History = strings.Join(lines, "\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, d); err != nil {
		logger.L.Error("failed to render page", "error", err)
	}
}
