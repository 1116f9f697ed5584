package main

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/minkit/cmd/minctl/logger"
)

// printer formats counts with locale-specific digit grouping.
var printer = message.NewPrinter(language.English)

func newPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("unknown locale, using English", "locale", locale, "error", err)
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// formatValue renders an input value exactly as it would be parsed back.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseValues parses command-line numbers.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
