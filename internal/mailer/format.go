package mailer

import "strconv"

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
