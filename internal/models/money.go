package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rub = message.NewPrinter(language.Russian)

// FormatPrice renders whole roubles with Russian digit grouping, e.g. "17 980 ₽".
// The group separator is whatever CLDR defines for ru (a no-break space).
func FormatPrice(amount int64) string {
	return rub.Sprintf("%d ₽", amount)
}
