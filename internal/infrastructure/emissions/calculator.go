// Package emissions оценивает выбросы CO2e по спецификации материалов и производственным процессам.
package emissions

import (
	"strings"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/shopspring/decimal"
)

const precision = 4

// Коэффициенты, кг CO2e на кг материала.
var defaultMaterialFactors = map[string]string{
	"wood":      "0.45",
	"oak":       "0.52",
	"pine":      "0.38",
	"plywood":   "0.68",
	"mdf":       "0.72",
	"metal":     "2.10",
	"steel":     "1.85",
	"aluminium": "8.24",
	"aluminum":  "8.24",
	"copper":    "3.81",
	"plastic":   "2.50",
	"abs":       "3.10",
	"pp":        "1.95",
	"pvc":       "2.41",
	"glass":     "0.85",
	"textile":   "5.50",
	"cotton":    "4.90",
	"polyester": "6.40",
	"leather":   "17.00",
	"foam":      "3.40",
	"ceramic":   "0.70",
	"paper":     "1.10",
	"cardboard": "0.94",
	"rubber":    "2.85",
}

// Множитель энергобаланса страны производства.
var defaultCountryMultipliers = map[string]string{
	"cn": "1.30", "china": "1.30",
	"in": "1.35", "india": "1.35",
	"vn": "1.20", "vietnam": "1.20",
	"pl": "1.25", "poland": "1.25",
	"us": "1.05", "usa": "1.05", "united states": "1.05",
	"de": "0.95", "germany": "0.95",
	"it": "0.90", "italy": "0.90",
	"gb": "0.85", "uk": "0.85", "united kingdom": "0.85",
	"fr": "0.70", "france": "0.70",
	"se": "0.60", "sweden": "0.60",
	"no": "0.55", "norway": "0.55",
}

// Коэффициенты, кг CO2e на один технологический процесс.
var defaultProcessFactors = map[string]string{
	"sawing":            "0.12",
	"sanding":           "0.08",
	"cnc machining":     "0.35",
	"milling":           "0.30",
	"drilling":          "0.05",
	"welding":           "0.60",
	"casting":           "1.20",
	"forging":           "0.95",
	"stamping":          "0.40",
	"extrusion":         "0.75",
	"injection molding": "0.90",
	"blow molding":      "0.70",
	"painting":          "0.25",
	"powder coating":    "0.32",
	"lacquering":        "0.22",
	"upholstery":        "0.18",
	"sewing":            "0.10",
	"weaving":           "0.45",
	"gluing":            "0.06",
	"assembly":          "0.15",
	"packaging":         "0.09",
}

// Calculator — чистые функции поверх таблиц коэффициентов.
type Calculator struct {
	materials       map[string]decimal.Decimal
	countries       map[string]decimal.Decimal
	processes       map[string]decimal.Decimal
	defaultMaterial decimal.Decimal
	defaultProcess  decimal.Decimal
}

func NewCalculator() *Calculator {
	return &Calculator{
		materials:       toDecimals(defaultMaterialFactors),
		countries:       toDecimals(defaultCountryMultipliers),
		processes:       toDecimals(defaultProcessFactors),
		defaultMaterial: decimal.RequireFromString("1.50"),
		defaultProcess:  decimal.RequireFromString("0.20"),
	}
}

// RawMaterials = Σ вес × коэффициент материала × множитель страны.
// Конкретный материал приоритетнее класса, неизвестные берут коэффициент по умолчанию.
func (c *Calculator) RawMaterials(materials []domain.Material, country string) float64 {
	sum := decimal.Zero
	for _, m := range materials {
		if m.Weight <= 0 {
			continue
		}

		sum = sum.Add(decimal.NewFromFloat(m.Weight).Mul(c.materialFactor(m)))
	}

	return sum.Mul(c.countryMultiplier(country)).Round(precision).InexactFloat64()
}

// Processes = Σ коэффициентов всех процессов во всех группах.
func (c *Calculator) Processes(processes []domain.ManufacturingProcess) float64 {
	sum := decimal.Zero
	for _, group := range processes {
		for _, p := range group.Processes {
			f, ok := c.processes[normalize(p)]
			if !ok {
				f = c.defaultProcess
			}
			sum = sum.Add(f)
		}
	}

	return sum.Round(precision).InexactFloat64()
}

func (c *Calculator) materialFactor(m domain.Material) decimal.Decimal {
	if f, ok := c.materials[normalize(m.SpecificMaterial)]; ok {
		return f
	}
	if f, ok := c.materials[normalize(m.MaterialClass)]; ok {
		return f
	}

	return c.defaultMaterial
}

func (c *Calculator) countryMultiplier(country string) decimal.Decimal {
	if f, ok := c.countries[normalize(country)]; ok {
		return f
	}

	return decimal.NewFromInt(1)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toDecimals(src map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(src))
	for k, v := range src {
		out[k] = decimal.RequireFromString(v)
	}

	return out
}
