package main

import (
	"StartSitApi/internal/analysis"
	"StartSitApi/internal/feed"
	"StartSitApi/internal/validator"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// StreamAnalysis pushes each player's result over a websocket as soon as it is
// scored. Lookup and validation happen before the upgrade so failures get a
// normal JSON error. Streamed runs are not stored.
func (app *application) StreamAnalysis(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	qs := r.URL.Query()

	input := app.readString(qs, "input", "")
	year := app.readInt(qs, "year", app.config.season.year, v)
	week := app.readInt(qs, "week", app.config.season.week, v)
	explain := app.readBool(qs, "explain", false, v)

	req := app.newAnalysisRequest(input, &year, &week, explain)
	if app.validateAnalysisRequest(v, req); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	records, _, err := app.fetchRecords(req)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if len(records) == 0 {
		app.analysisFailedResponse(w, r, req.Input)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || app.trustedOrigin(origin)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		app.logError(r, err)
		return
	}

	watcher := feed.NewWatcher(conn)
	go watcher.ReadEvents()
	go app.streamResults(watcher, records, req)
	watcher.WriteEvents()
}

func (app *application) streamResults(watcher *feed.Watcher, records []*analysis.Record,
	req analysisRequest) {
	sent := 0
	err := app.newAnalyzer(req.Explain).Stream(records, req.Year, req.Week,
		func(result analysis.Result) error {
			msg, err := json.Marshal(result)
			if err != nil {
				return err
			}
			sent++
			return watcher.Send(msg)
		})

	switch {
	case err == nil && sent == 0:
		watcher.Finish(fmt.Sprintf("Analysis failed: Could not retrieve stats for %s.", req.Input))
	case err == nil:
		watcher.Finish(fmt.Sprintf("analysis complete: %d players", sent))
	default:
		app.logger.PrintError(err, map[string]string{"input": req.Input})
		watcher.Finish("analysis aborted")
	}
}
