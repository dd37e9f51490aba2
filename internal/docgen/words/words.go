// Package words renders amounts and dates as the English phrases used in
// rental agreement text. Amounts follow the Indian numbering system
// (crore/lakh/thousand grouping).
package words

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// ToWords converts a non-negative integer amount to English words using
// Indian place values. Callers truncate fractional amounts before calling;
// decimals are never rendered in words.
func ToWords(amount int64) string {
	if amount == 0 {
		return "Zero"
	}

	var parts []string
	if c := amount / crore; c > 0 {
		// Crore counts above 999 re-group recursively ("One Lakh Crore").
		parts = append(parts, ToWords(c), "Crore")
		amount %= crore
	}
	if l := amount / lakh; l > 0 {
		parts = append(parts, belowThousand(l), "Lakh")
		amount %= lakh
	}
	if t := amount / 1000; t > 0 {
		parts = append(parts, belowThousand(t), "Thousand")
		amount %= 1000
	}
	if amount > 0 {
		parts = append(parts, belowThousand(amount))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func belowThousand(n int64) string {
	if n < 100 {
		return belowHundred(n)
	}
	s := ones[n/100] + " Hundred"
	if rem := n % 100; rem > 0 {
		s += " and " + belowHundred(rem)
	}
	return s
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if rem := n % 10; rem > 0 {
		s += " " + ones[rem]
	}
	return s
}

var printer = message.NewPrinter(language.English)

// Comma renders an integer with thousands separators ("15800" -> "15,800"),
// the numeric counterpart of ToWords in agreement text.
func Comma(amount int64) string {
	return printer.Sprintf("%d", amount)
}
