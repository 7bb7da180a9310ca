package httpx

import "strconv"

// FormatMoney — сумма с двумя знаками после точки ("21.00"), как её показывает витрина.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
