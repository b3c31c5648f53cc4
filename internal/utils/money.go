package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatKES renders an amount the way receipts print it.
func FormatKES(amount float64) string {
	return "KES " + FormatMoney(amount)
}
