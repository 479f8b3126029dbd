package data

import "strings"

// teamAbbreviations maps lowercase nicknames and abbreviations to the
// abbreviation used in weekly_stats.team.
var teamAbbreviations = map[string]string{
	"49ers": "SF", "bears": "CHI", "bengals": "CIN", "bills": "BUF", "broncos": "DEN",
	"browns": "CLE", "buccaneers": "TB", "cardinals": "ARI", "chargers": "LAC",
	"chiefs": "KC", "colts": "IND", "cowboys": "DAL", "dolphins": "MIA",
	"eagles": "PHI", "falcons": "ATL", "giants": "NYG", "jaguars": "JAX",
	"jets": "NYJ", "lions": "DET", "packers": "GB", "panthers": "CAR",
	"patriots": "NE", "raiders": "LV", "rams": "LAR", "ram": "LAR", "ravens": "BAL",
	"saints": "NO", "seahawks": "SEA", "steelers": "PIT", "texans": "HOU",
	"titans": "TEN", "vikings": "MIN", "washington commanders": "WAS",
	"commanders": "WAS",
	"racers":     "LAR",

	// AFC
	"buf": "BUF", "ne": "NE", "mia": "MIA", "nyj": "NYJ",
	"bal": "BAL", "cin": "CIN", "cle": "CLE", "pit": "PIT",
	"hou": "HOU", "ind": "IND", "jax": "JAX", "ten": "TEN",
	"den": "DEN", "kc": "KC", "lac": "LAC", "lv": "LV",
	// NFC
	"dal": "DAL", "nyg": "NYG", "phi": "PHI", "was": "WAS",
	"chi": "CHI", "det": "DET", "gb": "GB", "min": "MIN",
	"atl": "ATL", "car": "CAR", "no": "NO", "tb": "TB",
	"ari": "ARI", "lar": "LAR", "sf": "SF", "sea": "SEA",
}

// SkillPositions are the only positions the recommendation engine is tuned for.
var SkillPositions = []string{"RB", "WR", "TE"}

// NormalizeTeam turns a nickname or abbreviation into the canonical
// abbreviation. Unknown input is upper-cased and passed through.
func NormalizeTeam(input string) string {
	input = strings.TrimSpace(input)
	if abbr, ok := teamAbbreviations[strings.ToLower(input)]; ok {
		return abbr
	}
	return strings.ToUpper(input)
}

// IsTeamInput reports whether input names a team rather than a player.
func IsTeamInput(input string) bool {
	input = strings.TrimSpace(input)
	if _, ok := teamAbbreviations[strings.ToLower(input)]; ok {
		return true
	}

	upper := strings.ToUpper(input)
	for _, abbr := range teamAbbreviations {
		if abbr == upper {
			return true
		}
	}
	return false
}
