package fundboard

// helpers shared by the package tests.

func EUR(v float64) Money { return M(v, "EUR") }
