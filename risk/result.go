package risk

type ClassProbability struct {
	Label       string
	Probability float64
}

// PredictionResult is one model's answer for one FeatureVector.
type PredictionResult struct {
	Model         string
	Label         string
	ClassIndex    int
	Probabilities []ClassProbability
	// Confidence is the probability the model assigned to Label.
	Confidence float64
}

func (r PredictionResult) clone() PredictionResult {
	r.Probabilities = append([]ClassProbability(nil), r.Probabilities...)
	return r
}

type ComparisonRow struct {
	Model      string
	Label      string
	Confidence float64
}

// Comparison holds one result per registered model, in registry order.
type Comparison struct {
	Features FeatureVector
	Results  []PredictionResult
}

func (c *Comparison) Rows() []ComparisonRow {
	rows := make([]ComparisonRow, len(c.Results))
	for i, r := range c.Results {
		rows[i] = ComparisonRow{Model: r.Model, Label: r.Label, Confidence: r.Confidence}
	}
	return rows
}
