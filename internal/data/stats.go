package data

import (
	"StartSitApi/internal/analysis"
	"StartSitApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

// StatLine is one player's raw box score for one week.
type StatLine struct {
	ID             int64     `json:"id"`
	Season         int       `json:"season"`
	Week           int       `json:"week"`
	PlayerName     string    `json:"player_name"`
	Team           string    `json:"team"`
	Position       string    `json:"position"`
	Carries        int       `json:"carries"`
	Targets        int       `json:"targets"`
	RushingYards   int       `json:"rushing_yards"`
	ReceivingYards int       `json:"receiving_yards"`
	Receptions     int       `json:"receptions"`
	RushingTDs     int       `json:"rushing_tds"`
	ReceivingTDs   int       `json:"receiving_tds"`
	CreatedAt      time.Time `json:"-"`
}

// Record reduces the box score to the engine's four inputs.
func (l *StatLine) Record() *analysis.Record {
	if l == nil {
		return nil
	}

	return &analysis.Record{
		Name:       l.PlayerName,
		Team:       l.Team,
		Position:   l.Position,
		Volume:     l.Carries + l.Targets,
		Yards:      l.RushingYards + l.ReceivingYards,
		Receptions: l.Receptions,
		TD:         l.RushingTDs + l.ReceivingTDs,
	}
}

func Records(lines []*StatLine) []*analysis.Record {
	records := make([]*analysis.Record, 0, len(lines))
	for _, l := range lines {
		records = append(records, l.Record())
	}
	return records
}

type StatModel struct {
	db *sql.DB
}

const statColumns = `id, season, week, player_name, team, position, carries, targets, rushing_yards,
	receiving_yards, receptions, rushing_tds, receiving_tds, created_at`

func scanStatLine(row interface{ Scan(...any) error }, line *StatLine) error {
	return row.Scan(
		&line.ID,
		&line.Season,
		&line.Week,
		&line.PlayerName,
		&line.Team,
		&line.Position,
		&line.Carries,
		&line.Targets,
		&line.RushingYards,
		&line.ReceivingYards,
		&line.Receptions,
		&line.RushingTDs,
		&line.ReceivingTDs,
		&line.CreatedAt,
	)
}

// GetPlayerWeek returns the first skill-position line whose player name
// contains name, ignoring case.
func (m *StatModel) GetPlayerWeek(name string, season, week int) (*StatLine, error) {
	stmt := `
		SELECT ` + statColumns + `
		FROM weekly_stats
		WHERE player_name ILIKE '%' || $1 || '%'
		AND season = $2
		AND week = $3
		AND position = ANY($4)
		ORDER BY id ASC
		LIMIT 1`

	args := []any{escapeLike(name), season, week, pq.Array(SkillPositions)}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var line StatLine
	err := scanStatLine(m.db.QueryRowContext(ctx, stmt, args...), &line)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &line, nil
}

// GetTeamWeek returns every skill-position line for the team in a week. team
// may be a nickname or an abbreviation.
func (m *StatModel) GetTeamWeek(team string, season, week int) ([]*StatLine, error) {
	stmt := `
		SELECT ` + statColumns + `
		FROM weekly_stats
		WHERE team = $1
		AND season = $2
		AND week = $3
		AND position = ANY($4)
		ORDER BY id ASC`

	args := []any{NormalizeTeam(team), season, week, pq.Array(SkillPositions)}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*StatLine, 0)
	for rows.Next() {
		var line StatLine
		if err := scanStatLine(rows, &line); err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// InsertBatch bulk loads stat lines with COPY in a single transaction and
// returns the number of rows written.
func (m *StatModel) InsertBatch(lines []*StatLine) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyBatch
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("weekly_stats",
		"season", "week", "player_name", "team", "position", "carries", "targets",
		"rushing_yards", "receiving_yards", "receptions", "rushing_tds", "receiving_tds"))
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return 0, rollbackErr
		}
		return 0, err
	}

	for _, l := range lines {
		_, err = stmt.ExecContext(ctx, l.Season, l.Week, l.PlayerName, NormalizeTeam(l.Team),
			strings.ToUpper(l.Position), l.Carries, l.Targets, l.RushingYards, l.ReceivingYards,
			l.Receptions, l.RushingTDs, l.ReceivingTDs)
		if err != nil {
			stmt.Close()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return 0, rollbackErr
			}
			return 0, err
		}
	}

	// An empty Exec flushes the COPY buffer; constraint violations surface here.
	if _, err = stmt.ExecContext(ctx); err == nil {
		err = stmt.Close()
	} else {
		stmt.Close()
	}
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return 0, rollbackErr
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrDuplicateStatLine
		}
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	return len(lines), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(s))
}

func ValidateStatLine(v *validator.Validator, line *StatLine, currentSeason int) {
	ValidateSeasonWeek(v, line.Season, line.Week, currentSeason)

	v.Check(line.PlayerName != "", "player_name", "must be provided")
	v.Check(len(line.PlayerName) <= 100, "player_name", "must be 100 characters or less")
	v.Check(line.Team != "", "team", "must be provided")
	v.Check(len(NormalizeTeam(line.Team)) <= 3, "team", "must be a team name or abbreviation")
	v.Check(line.Position != "", "position", "must be provided")
	v.Check(len(line.Position) <= 4, "position", "must be 4 characters or less")

	// Yardage can legitimately be negative; counting stats cannot.
	v.Check(line.Carries >= 0, "carries", "must be 0 or greater")
	v.Check(line.Targets >= 0, "targets", "must be 0 or greater")
	v.Check(line.Receptions >= 0, "receptions", "must be 0 or greater")
	v.Check(line.Receptions <= line.Targets, "receptions", "must not exceed targets")
	v.Check(line.RushingTDs >= 0, "rushing_tds", "must be 0 or greater")
	v.Check(line.ReceivingTDs >= 0, "receiving_tds", "must be 0 or greater")
}
