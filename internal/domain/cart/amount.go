package cart

import (
	"strconv"
	"strings"
)

// ParseAmount converte texto livre digitado pelo operador (desconto ou
// adição) em valor monetário. Separadores de milhar são removidos antes
// do parse; quando ponto e vírgula coexistem, o que aparece por último
// é tratado como separador decimal. Entrada inválida resulta em 0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// formato es-AR: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// formato en-US: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// vírgula única com dois dígitos ou menos é decimal; o resto é milhar
		if i := strings.LastIndex(s, ","); len(s)-i-1 <= 2 && strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		// pontos em grupos de três são separador de milhar es-AR
		if dotGroupsOfThree(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// dotGroupsOfThree reporta se todos os grupos após o primeiro ponto
// têm exatamente três dígitos (formato 1.000 / 12.345.678). Um grupo
// inicial "0" nunca é milhar: "0.500" é fração decimal.
func dotGroupsOfThree(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) < 2 {
		return false
	}
	if first := strings.TrimPrefix(groups[0], "-"); first == "0" {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}
