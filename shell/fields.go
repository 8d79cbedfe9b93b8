package shell

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field describes one form input and the range the widget enforces.
type Field struct {
	Name     string
	Label    string
	Min      float64
	Max      float64
	Default  float64
	Decimals int
}

func (f Field) Integer() bool { return f.Decimals == 0 }

// Fields returns the form in display order.
func Fields() []Field {
	return []Field{
		{Name: "Age", Label: "Age (years)", Min: 10, Max: 60, Default: 25},
		{Name: "SystolicBP", Label: "Systolic blood pressure (mmHg)", Min: 70, Max: 200, Default: 120},
		{Name: "BS", Label: "Blood sugar", Min: 1.0, Max: 20.0, Default: 6.0, Decimals: 2},
		{Name: "DiastolicBP", Label: "Diastolic blood pressure (mmHg)", Min: 40, Max: 120, Default: 80},
		{Name: "BodyTemp", Label: "Body temperature (°C)", Min: 35.0, Max: 42.0, Default: 37.0, Decimals: 1},
		{Name: "HeartRate", Label: "Heart rate (bpm)", Min: 40, Max: 150, Default: 75},
	}
}

// Parse applies widget rules to one answer: empty means default, "-" clears
// the field, anything else must be a number inside the range.
func (f Field) Parse(answer string) (value float64, present bool, err error) {
	answer = strings.TrimSpace(answer)
	switch answer {
	case "":
		return f.Default, true, nil
	case "-":
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(strings.ReplaceAll(answer, ",", "."), 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be a number", f.Name)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%s must be a number", f.Name)
	}
	if f.Integer() && value != math.Trunc(value) {
		return 0, false, fmt.Errorf("%s must be a whole number", f.Name)
	}
	if value < f.Min || value > f.Max {
		return 0, false, fmt.Errorf("%s must be between %s and %s", f.Name, f.format(f.Min), f.format(f.Max))
	}
	return value, true, nil
}

func (f Field) format(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Decimals, 64)
}
