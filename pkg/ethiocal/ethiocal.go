// Package ethiocal renders an approximate Ethiopian calendar date line for
// the portal header. The mapping is a display approximation, not a proper
// calendar conversion: the year runs 8 behind Gregorian and the month index
// is shifted so September lines up with Meskerem.
package ethiocal

import (
	"fmt"
	"time"
)

var monthsAmharic = [13]string{
	"መስከረም", "ጥቅምት", "ህዳር", "ታህሳስ", "ጥር", "የካቲት", "መጋቢት",
	"ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
}

var monthsOromo = [13]string{
	"Fulbaana", "Onkololeessa", "Sadaasa", "Muddee", "Amajjii", "Gurraandhala", "Bitootessa",
	"Eebila", "Caamsaa", "Waxabajjii", "Adooleessa", "Hagayya", "Qaammee",
}

// DateString formats the given instant as the localized Ethiopian date line.
// Any language other than Afaan Oromoo renders the Amharic form.
func DateString(now time.Time, afaanOromoo bool) string {
	ethYear := now.Year() - 8
	day := now.Day()
	clock := now.Format("03:04:05 PM")
	monthIdx := (int(now.Month()) - 1 + 4) % 13

	if afaanOromoo {
		return fmt.Sprintf("%s %d, %d | Yeroo: %s", monthsOromo[monthIdx], day, ethYear, clock)
	}
	return fmt.Sprintf("%s %d, %d ዓ.ም | ሰዓት፡ %s", monthsAmharic[monthIdx], day, ethYear, clock)
}
