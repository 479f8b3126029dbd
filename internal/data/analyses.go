package data

import (
	"StartSitApi/internal/analysis"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AnalysisRun is one stored request: the raw input and every player result.
type AnalysisRun struct {
	ID        uuid.UUID         `json:"id"`
	Input     string            `json:"input"`
	IsTeam    bool              `json:"is_team"`
	Season    int               `json:"year"`
	Week      int               `json:"week"`
	Results   []analysis.Result `json:"results"`
	CreatedAt time.Time         `json:"created_at"`
	Version   int32             `json:"-"`
}

type AnalysisModel struct {
	db *sql.DB
}

func (m *AnalysisModel) Insert(run *AnalysisRun) error {
	results, err := json.Marshal(run.Results)
	if err != nil {
		return err
	}

	run.ID = uuid.New()

	stmt := `
		INSERT INTO analyses (id, input, is_team, season, week, results)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, version`

	args := []any{run.ID, run.Input, run.IsTeam, run.Season, run.Week, results}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.db.QueryRowContext(ctx, stmt, args...).Scan(&run.CreatedAt, &run.Version)
}

func (m *AnalysisModel) Get(id uuid.UUID) (*AnalysisRun, error) {
	stmt := `
		SELECT id, input, is_team, season, week, results, created_at, version
		FROM analyses
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var run AnalysisRun
	var results []byte
	err := m.db.QueryRowContext(ctx, stmt, id).Scan(
		&run.ID,
		&run.Input,
		&run.IsTeam,
		&run.Season,
		&run.Week,
		&results,
		&run.CreatedAt,
		&run.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	if err := json.Unmarshal(results, &run.Results); err != nil {
		return nil, err
	}

	return &run, nil
}

// GetAll lists stored runs whose input contains the given text, newest first
// unless filters say otherwise.
func (m *AnalysisModel) GetAll(input string, filters Filters) ([]*AnalysisRun, Metadata, error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), id, input, is_team, season, week, results, created_at, version
		FROM analyses
		WHERE (input ILIKE '%%' || $1 || '%%' OR $1 = '')
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, escapeLike(input), filters.limit(), filters.offset())
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	runs := make([]*AnalysisRun, 0)
	for rows.Next() {
		var run AnalysisRun
		var results []byte
		err := rows.Scan(
			&totalRecords,
			&run.ID,
			&run.Input,
			&run.IsTeam,
			&run.Season,
			&run.Week,
			&results,
			&run.CreatedAt,
			&run.Version,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		if err := json.Unmarshal(results, &run.Results); err != nil {
			return nil, Metadata{}, err
		}
		runs = append(runs, &run)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	metadata := calculateMetadata(totalRecords, filters.Page, filters.PageSize)

	return runs, metadata, nil
}
