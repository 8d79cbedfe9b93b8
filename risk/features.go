package risk

// NumFeatures is the width every scaler and classifier must be fitted on.
const NumFeatures = 6

// FeatureVector holds the six vitals in fitted order.
type FeatureVector [NumFeatures]float64

func FeatureNames() []string {
	return []string{
		"Age",
		"SystolicBP",
		"DiastolicBP",
		"BS",
		"BodyTemp",
		"HeartRate",
	}
}

// Input is one operator submission. A nil field means the value was not provided.
type Input struct {
	Age         *int
	SystolicBP  *int
	DiastolicBP *int
	BS          *float64
	BodyTemp    *float64
	HeartRate   *int
}

func NewInput(age, systolicBP, diastolicBP int, bs, bodyTemp float64, heartRate int) Input {
	return Input{
		Age:         &age,
		SystolicBP:  &systolicBP,
		DiastolicBP: &diastolicBP,
		BS:          &bs,
		BodyTemp:    &bodyTemp,
		HeartRate:   &heartRate,
	}
}

// DefaultInput is the form's initial state.
func DefaultInput() Input {
	return NewInput(25, 120, 80, 6.0, 37.0, 75)
}

func (in Input) missing() []string {
	var names []string
	if in.Age == nil {
		names = append(names, "Age")
	}
	if in.SystolicBP == nil {
		names = append(names, "SystolicBP")
	}
	if in.DiastolicBP == nil {
		names = append(names, "DiastolicBP")
	}
	if in.BS == nil {
		names = append(names, "BS")
	}
	if in.BodyTemp == nil {
		names = append(names, "BodyTemp")
	}
	if in.HeartRate == nil {
		names = append(names, "HeartRate")
	}
	return names
}

// Vector validates presence and builds the FeatureVector. Values are not
// range checked.
func (in Input) Vector() (FeatureVector, error) {
	if missing := in.missing(); len(missing) > 0 {
		return FeatureVector{}, &MissingInputError{Fields: missing}
	}
	return FeatureVector{
		float64(*in.Age),
		float64(*in.SystolicBP),
		float64(*in.DiastolicBP),
		*in.BS,
		*in.BodyTemp,
		float64(*in.HeartRate),
	}, nil
}
