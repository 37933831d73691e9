package domain

import "fmt"

// Amounts are stored in minor units (centavos) as int64 to avoid
// floating-point drift. R$ 10,50 is stored as 1050.

// FormatBRL renders centavos as a human-readable BRL amount, e.g.
// 1050 -> "R$ 10.50". Negative amounts keep the sign in front of the
// currency symbol.
func FormatBRL(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, centavos/100, centavos%100)
}
