package data

import (
	"StartSitApi/internal/assert"
	"StartSitApi/internal/validator"
	"testing"
)

func TestStatLineRecord(t *testing.T) {
	line := &StatLine{
		PlayerName:     "Christian McCaffrey",
		Team:           "SF",
		Position:       "RB",
		Carries:        19,
		Targets:        6,
		RushingYards:   92,
		ReceivingYards: 38,
		Receptions:     5,
		RushingTDs:     1,
		ReceivingTDs:   1,
	}

	rec := line.Record()
	assert.Equal(t, rec.Name, "Christian McCaffrey")
	assert.Equal(t, rec.Team, "SF")
	assert.Equal(t, rec.Position, "RB")
	assert.Equal(t, rec.Volume, 25)
	assert.Equal(t, rec.Yards, 130)
	assert.Equal(t, rec.Receptions, 5)
	assert.Equal(t, rec.TD, 2)
}

func TestRecordsKeepsMissingLines(t *testing.T) {
	records := Records([]*StatLine{{PlayerName: "A"}, nil, {PlayerName: "C"}})

	assert.Equal(t, len(records), 3)
	assert.Equal(t, records[1].Empty(), true)
	assert.Equal(t, records[2].Name, "C")
}

func TestValidateStatLine(t *testing.T) {
	valid := func() *StatLine {
		return &StatLine{
			Season: 2024, Week: 12, PlayerName: "Puka Nacua", Team: "Rams", Position: "WR",
			Targets: 11, Receptions: 8, ReceivingYards: 106, RushingYards: -3, Carries: 1,
		}
	}

	tests := []struct {
		name    string
		modify  func(l *StatLine)
		wantKey string
	}{
		{name: "Valid With Negative Yards", modify: func(l *StatLine) {}},
		{name: "Missing Name", modify: func(l *StatLine) { l.PlayerName = "" }, wantKey: "player_name"},
		{name: "Unknown Long Team", modify: func(l *StatLine) { l.Team = "Oilers" }, wantKey: "team"},
		{name: "Negative Carries", modify: func(l *StatLine) { l.Carries = -1 }, wantKey: "carries"},
		{name: "Catches Exceed Targets", modify: func(l *StatLine) { l.Receptions = 12 }, wantKey: "receptions"},
		{name: "Week Out Of Range", modify: func(l *StatLine) { l.Week = 23 }, wantKey: "week"},
		{name: "Season Too Early", modify: func(l *StatLine) { l.Season = 1990 }, wantKey: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := valid()
			tt.modify(line)

			v := validator.New()
			ValidateStatLine(v, line, 2025)

			if tt.wantKey == "" {
				assert.Equal(t, v.Valid(), true)
				return
			}
			_, ok := v.Errors[tt.wantKey]
			assert.Equal(t, ok, true)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, escapeLike(" 100%_back "), `100\%\_back`)
}
