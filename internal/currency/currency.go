// Package currency converts base-currency amounts into a country's display
// currency. It is presentation only; the engines always work in the base
// unit.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Info is the display currency for a country.
type Info struct {
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

var base = Info{Symbol: "$", Rate: 1}

var byCountry = map[string]Info{
	"United States":        base,
	"United Kingdom":       {Symbol: "£", Rate: 0.82},
	"Canada":               {Symbol: "C$", Rate: 1.37},
	"Australia":            {Symbol: "A$", Rate: 1.51},
	"Germany":              {Symbol: "€", Rate: 0.93},
	"France":               {Symbol: "€", Rate: 0.93},
	"Netherlands":          {Symbol: "€", Rate: 0.93},
	"India":                {Symbol: "₹", Rate: 83.5},
	"Singapore":            {Symbol: "S$", Rate: 1.35},
	"United Arab Emirates": {Symbol: "AED", Rate: 3.67},
	"South Africa":         {Symbol: "R", Rate: 18.25},
	"Brazil":               {Symbol: "R$", Rate: 5.15},
	"Mexico":               {Symbol: "MX$", Rate: 17.1},
	"Other":                base,
}

var printer = message.NewPrinter(language.English)

// Lookup returns the display currency for country. Unknown countries use
// the base currency.
func Lookup(country string) Info {
	if info, ok := byCountry[country]; ok {
		return info
	}
	return base
}

// Convert returns amount in the country's currency, rounded to a whole unit.
func Convert(amount float64, country string) int64 {
	return int64(math.Round(amount * Lookup(country).Rate))
}

// Format renders amount converted to the country's currency with thousands
// grouping, so 1200 for India renders as "₹100,200".
func Format(amount float64, country string) string {
	return Lookup(country).Symbol + printer.Sprintf("%d", Convert(amount, country))
}
