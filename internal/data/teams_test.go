package data

import (
	"StartSitApi/internal/assert"
	"testing"
)

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Nickname", input: "Eagles", want: "PHI"},
		{name: "Nickname With Spaces", input: "  chiefs ", want: "KC"},
		{name: "Lowercase Abbreviation", input: "sf", want: "SF"},
		{name: "Uppercase Abbreviation", input: "DET", want: "DET"},
		{name: "Full Name", input: "Washington Commanders", want: "WAS"},
		{name: "Common Typo", input: "Racers", want: "LAR"},
		{name: "Unknown Passes Through", input: "oak", want: "OAK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NormalizeTeam(tt.input), tt.want)
		})
	}
}

func TestIsTeamInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Nickname", input: "49ers", want: true},
		{name: "Abbreviation", input: "LAR", want: true},
		{name: "Mixed Case Abbreviation", input: "Gb", want: true},
		{name: "Player Name", input: "Christian McCaffrey", want: false},
		{name: "Partial Player Name", input: "Kittle", want: false},
		{name: "Empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IsTeamInput(tt.input), tt.want)
		})
	}
}
