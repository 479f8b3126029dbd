package main

import (
	"StartSitApi/internal/analysis"
	"StartSitApi/internal/data"
	"StartSitApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var errNoResults = errors.New("no player could be analysed")

type analysisRequest struct {
	Input   string
	Year    int
	Week    int
	Explain bool
}

// newAnalysisRequest fills an omitted year or week from the configured season.
func (app *application) newAnalysisRequest(input string, year, week *int,
	explain bool) analysisRequest {
	req := analysisRequest{
		Input:   strings.TrimSpace(input),
		Year:    app.config.season.year,
		Week:    app.config.season.week,
		Explain: explain,
	}
	if year != nil {
		req.Year = *year
	}
	if week != nil {
		req.Week = *week
	}

	return req
}

func (app *application) validateAnalysisRequest(v *validator.Validator, req analysisRequest) {
	v.Check(req.Input != "", "player_or_team_input", "must be provided")
	v.Check(len(req.Input) <= 100, "player_or_team_input", "must be 100 characters or less")
	data.ValidateSeasonWeek(v, req.Year, req.Week, app.config.season.year)
}

// fetchRecords loads the week's stat lines for a team or a single player. A
// player with no line yields no records rather than an error.
func (app *application) fetchRecords(req analysisRequest) ([]*analysis.Record, bool, error) {
	if data.IsTeamInput(req.Input) {
		lines, err := app.models.Stats.GetTeamWeek(req.Input, req.Year, req.Week)
		if err != nil {
			return nil, true, err
		}
		return data.Records(lines), true, nil
	}

	line, err := app.models.Stats.GetPlayerWeek(req.Input, req.Year, req.Week)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			return nil, false, nil
		default:
			return nil, false, err
		}
	}

	return []*analysis.Record{line.Record()}, false, nil
}

func (app *application) newAnalyzer(explain bool) *analysis.Analyzer {
	analyzer := analysis.New(app.logger)
	analyzer.Explain = explain
	return analyzer
}

// runAnalysis analyses and stores a request. It returns errNoResults when
// nothing could be scored.
func (app *application) runAnalysis(req analysisRequest) (*data.AnalysisRun, error) {
	records, isTeam, err := app.fetchRecords(req)
	if err != nil {
		return nil, err
	}

	results := app.newAnalyzer(req.Explain).Analyze(records, req.Year, req.Week)
	if len(results) == 0 {
		return nil, errNoResults
	}

	run := &data.AnalysisRun{
		Input:   req.Input,
		IsTeam:  isTeam,
		Season:  req.Year,
		Week:    req.Week,
		Results: results,
	}

	err = app.models.Analyses.Insert(run)
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (app *application) Analyze(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerOrTeamInput string `json:"player_or_team_input"`
		Year              *int   `json:"year"`
		Week              *int   `json:"week"`
		Explain           bool   `json:"explain"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	req := app.newAnalysisRequest(input.PlayerOrTeamInput, input.Year, input.Week, input.Explain)

	v := validator.New()
	if app.validateAnalysisRequest(v, req); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	run, err := app.runAnalysis(req)
	if err != nil {
		switch {
		case errors.Is(err, errNoResults):
			app.analysisFailedResponse(w, r, req.Input)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/analysis/%s", run.ID))

	err = app.writeJSON(w, http.StatusCreated, envelope{"analysis": run}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	run, err := app.models.Analyses.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"analysis": run}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllAnalyses(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Input string
		data.Filters
	}

	v := validator.New()
	qs := r.URL.Query()

	input.Input = app.readString(qs, "input", "")
	input.Filters.Page = app.readInt(qs, "page", 1, v)
	input.Filters.PageSize = app.readInt(qs, "page_size", 20, v)
	input.Filters.Sort = app.readString(qs, "sort", "-created_at")
	input.Filters.SortSafeList = []string{"created_at", "input", "season", "week",
		"-created_at", "-input", "-season", "-week"}

	if data.ValidateFilters(v, input.Filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	runs, metadata, err := app.models.Analyses.GetAll(input.Input, input.Filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"analyses": runs, "metadata": metadata}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// EmailAnalysis runs and stores an analysis, then mails the report in the
// background.
func (app *application) EmailAnalysis(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerOrTeamInput string `json:"player_or_team_input"`
		Year              *int   `json:"year"`
		Week              *int   `json:"week"`
		Email             string `json:"email"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	req := app.newAnalysisRequest(input.PlayerOrTeamInput, input.Year, input.Week, false)

	v := validator.New()
	v.Check(input.Email != "", "email", "must be provided")
	v.Check(validator.Matches(input.Email, validator.EmailRX), "email",
		"must be a valid email address")
	if app.validateAnalysisRequest(v, req); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	run, err := app.runAnalysis(req)
	if err != nil {
		switch {
		case errors.Is(err, errNoResults):
			app.analysisFailedResponse(w, r, req.Input)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.backgroundTask(func() {
		reportData := map[string]any{
			"ID":      run.ID.String(),
			"Input":   run.Input,
			"Year":    run.Season,
			"Week":    run.Week,
			"Results": run.Results,
		}

		err := app.mailer.Send(input.Email, "lineup_report.tmpl", reportData)
		if err != nil {
			app.logger.PrintError(err, map[string]string{
				"analysis_id": run.ID.String(),
			})
		}
	})

	err = app.writeJSON(w, http.StatusAccepted, envelope{
		"message":     fmt.Sprintf("report for %s will be emailed to %s", run.Input, input.Email),
		"analysis_id": run.ID,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
