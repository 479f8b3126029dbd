package main

import (
	"StartSitApi/internal/data"
	"StartSitApi/internal/jsonlog"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeStatStore struct {
	lines     []*data.StatLine
	inserted  []*data.StatLine
	insertErr error
}

func (s *fakeStatStore) GetPlayerWeek(name string, season, week int) (*data.StatLine, error) {
	for _, l := range s.lines {
		if l.Season == season && l.Week == week &&
			strings.Contains(strings.ToLower(l.PlayerName), strings.ToLower(name)) {
			return l, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

func (s *fakeStatStore) GetTeamWeek(team string, season, week int) ([]*data.StatLine, error) {
	lines := make([]*data.StatLine, 0)
	for _, l := range s.lines {
		if l.Season == season && l.Week == week && l.Team == data.NormalizeTeam(team) {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func (s *fakeStatStore) InsertBatch(lines []*data.StatLine) (int, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.inserted = append(s.inserted, lines...)
	return len(lines), nil
}

type fakeAnalysisStore struct {
	mu   sync.Mutex
	runs []*data.AnalysisRun
}

func (s *fakeAnalysisStore) Insert(run *data.AnalysisRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run.ID = uuid.New()
	run.CreatedAt = time.Now()
	run.Version = 1
	s.runs = append(s.runs, run)
	return nil
}

func (s *fakeAnalysisStore) Get(id uuid.UUID) (*data.AnalysisRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, run := range s.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

func (s *fakeAnalysisStore) GetAll(input string, filters data.Filters) ([]*data.AnalysisRun,
	data.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]*data.AnalysisRun, 0)
	for _, run := range s.runs {
		if strings.Contains(strings.ToLower(run.Input), strings.ToLower(input)) {
			runs = append(runs, run)
		}
	}
	return runs, data.Metadata{CurrentPage: filters.Page, PageSize: filters.PageSize,
		TotalRecords: len(runs)}, nil
}

type sentMail struct {
	recipient    string
	templateFile string
	data         any
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMail{recipient, templateFile, data})
	return nil
}

// testLines holds two 49ers lines for 2024 week 12 and one Rams line for the
// default season. The fullback line fires no rule.
func testLines() []*data.StatLine {
	return []*data.StatLine{
		{ID: 1, Season: 2024, Week: 12, PlayerName: "Christian McCaffrey", Team: "SF",
			Position: "RB", Carries: 20, Targets: 5, RushingYards: 90, ReceivingYards: 40,
			Receptions: 8, RushingTDs: 1, ReceivingTDs: 1},
		{ID: 2, Season: 2024, Week: 12, PlayerName: "George Kittle", Team: "SF",
			Position: "TE", Carries: 0, Targets: 14, ReceivingYards: 75, Receptions: 7},
		{ID: 3, Season: 2024, Week: 12, PlayerName: "Kyle Juszczyk", Team: "SF",
			Position: "TE", Carries: 15, Targets: 15, Receptions: 15, RushingTDs: 1},
		{ID: 4, Season: 2025, Week: 15, PlayerName: "Puka Nacua", Team: "LAR",
			Position: "WR", Targets: 14, ReceivingYards: 75, Receptions: 7},
	}
}

func newTestApplication(t *testing.T) (*application, *fakeStatStore, *fakeAnalysisStore,
	*fakeMailer) {
	t.Helper()

	stats := &fakeStatStore{lines: testLines()}
	analyses := &fakeAnalysisStore{}
	mailer := &fakeMailer{}

	app := &application{
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		models: data.Models{Stats: stats, Analyses: analyses},
		mailer: mailer,
	}
	app.config.env = "testing"
	app.config.version = "test"
	app.config.season.year = 2025
	app.config.season.week = 15

	return app, stats, analyses, mailer
}

func doRequest(t *testing.T, h http.Handler, method, url, body string,
	headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	r := httptest.NewRequest(method, url, reader)
	for k, v := range headers {
		r.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()

	err := json.NewDecoder(rr.Body).Decode(dest)
	if err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
