package main

import (
	"StartSitApi/internal/data"
	"StartSitApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const maxStatBatch = 1000

// InsertStats bulk loads weekly box scores. Every line is validated before any
// is written.
func (app *application) InsertStats(w http.ResponseWriter, r *http.Request) {
	var input struct {
		StatLines []*data.StatLine `json:"stat_lines"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(input.StatLines) > 0, "stat_lines", "must contain at least 1 line")
	v.Check(len(input.StatLines) <= maxStatBatch, "stat_lines",
		fmt.Sprintf("must contain no more than %d lines", maxStatBatch))
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	keys := make([]string, 0, len(input.StatLines))
	for i, line := range input.StatLines {
		if line == nil {
			v.AddError(fmt.Sprintf("stat_lines[%d]", i), "must be an object")
			continue
		}
		keys = append(keys, fmt.Sprintf("%d/%d/%s/%s", line.Season, line.Week,
			strings.ToLower(line.PlayerName), data.NormalizeTeam(line.Team)))

		lineV := validator.New()
		data.ValidateStatLine(lineV, line, app.config.season.year)
		for key, message := range lineV.Errors {
			v.AddError(fmt.Sprintf("stat_lines[%d].%s", i, key), message)
		}
	}
	v.Check(validator.Unique(keys), "stat_lines", "must not repeat a player for the same week")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	inserted, err := app.models.Stats.InsertBatch(input.StatLines)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateStatLine):
			v.AddError("stat_lines", "contains a player already loaded for that week")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"inserted": inserted}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
