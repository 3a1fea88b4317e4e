package stats

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// countryNameCorrections converts country names as recognized by the
// conversational platform's NLU to the naming conventions of the JHU
// dataset.
var countryNameCorrections = map[string]string{
	"United States of America":             "US",
	"United States":                        "US",
	"Cape Verde":                           "Cabo Verde",
	"Democratic Republic of the Congo":     "Congo (Kinshasa)",
	"Republic of the Congo":                "Congo (Brazzaville)",
	"Côte d'Ivoire":                        "Cote d'Ivoire",
	"Vatikan":                              "Holy See",
	"South Korea":                          "Korea, South",
	"Taiwan":                               "Taiwan*",
}

// Service turns warehouse totals into user-facing replies. Lookup failures
// are recovered locally: the user gets an apology naming what was asked for
// and the session is left untouched.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func correctCountry(country string) string {
	if corrected, ok := countryNameCorrections[country]; ok {
		return corrected
	}
	return country
}

func locationPhrase(country string) string {
	if country == "" {
		return "worldwide"
	}
	return "in " + country
}

// ConfirmedCasesMessage answers the confirmed-cases intent. country may be
// empty for worldwide totals.
func (s *Service) ConfirmedCasesMessage(ctx context.Context, country string) string {
	location := locationPhrase(country)
	total, found, err := s.repo.Total(ctx, MetricConfirmedCases, correctCountry(country))
	if err != nil || !found {
		if err != nil {
			log.Printf("confirmed cases lookup failed: %v", err)
		}
		return "I'm sorry, I can't find statistics for confirmed cases " + location
	}
	return "According to Johns Hopkins University, as of today, there are approximately " +
		formatNumber(total) + " confirmed cases of coronavirus " + location + "."
}

// DeathsMessage answers the deaths intent, appending the death rate when a
// confirmed-cases total is also available.
func (s *Service) DeathsMessage(ctx context.Context, country string) string {
	location := locationPhrase(country)
	corrected := correctCountry(country)
	deaths, found, err := s.repo.Total(ctx, MetricDeaths, corrected)
	if err != nil || !found {
		if err != nil {
			log.Printf("deaths lookup failed: %v", err)
		}
		return "I'm sorry, I can't find statistics for deaths " + location
	}

	message := "According to Johns Hopkins University, as of today, approximately " +
		formatNumber(deaths) + " people have died from coronavirus " + location + "."
	confirmed, found, err := s.repo.Total(ctx, MetricConfirmedCases, corrected)
	if err == nil && found && confirmed > 0 {
		rate := float64(deaths) / float64(confirmed) * 100.0
		message += fmt.Sprintf(" The death rate %s is %.2f%%", location, rate)
	}
	return message
}

// formatNumber groups digits with commas, e.g. 1234567 -> "1,234,567".
func formatNumber(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
