package data

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

// StatStore is the weekly box-score source the analysis endpoints read from.
type StatStore interface {
	GetPlayerWeek(name string, season, week int) (*StatLine, error)
	GetTeamWeek(team string, season, week int) ([]*StatLine, error)
	InsertBatch(lines []*StatLine) (int, error)
}

type AnalysisStore interface {
	Insert(run *AnalysisRun) error
	Get(id uuid.UUID) (*AnalysisRun, error)
	GetAll(input string, filters Filters) ([]*AnalysisRun, Metadata, error)
}

type Models struct {
	Stats    StatStore
	Analyses AnalysisStore
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Stats:    &StatModel{db: initDb},
		Analyses: &AnalysisModel{db: initDb},
	}
}
