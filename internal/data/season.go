package data

import "StartSitApi/internal/validator"

const (
	FirstSeason = 1999
	MaxWeek     = 22
)

func ValidateSeasonWeek(v *validator.Validator, season, week, currentSeason int) {
	v.Check(season >= FirstSeason, "year", "must be 1999 or later")
	v.Check(season <= currentSeason+1, "year", "must not be in the future")
	v.Check(week >= 1, "week", "must be 1 or greater")
	v.Check(week <= MaxWeek, "week", "must be 22 or less")
}
