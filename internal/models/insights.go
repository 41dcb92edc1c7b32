package models

// Insights summarizes one city's forecast series for the summary pane
type Insights struct {
	City           string
	AvgTemperature float64
	MaxTemperature float64
	MinTemperature float64
	Unit           TemperatureUnit
	AvgWindSpeed   float64 // m/s
	RainyPeriods   int     // intervals with precipitation probability > 50%
}

// Summarize computes forecast insights for a single-city series.
// An empty series yields a zero Insights.
func Summarize(s ForecastSeries) Insights {
	if len(s) == 0 {
		return Insights{}
	}

	ins := Insights{
		City:           s[0].City,
		Unit:           s[0].Unit,
		MaxTemperature: s[0].Temperature,
		MinTemperature: s[0].Temperature,
	}

	var tempSum, windSum float64
	for _, r := range s {
		tempSum += r.Temperature
		windSum += r.WindSpeed
		if r.Temperature > ins.MaxTemperature {
			ins.MaxTemperature = r.Temperature
		}
		if r.Temperature < ins.MinTemperature {
			ins.MinTemperature = r.Temperature
		}
		if r.PrecipProb > 50 {
			ins.RainyPeriods++
		}
	}

	ins.AvgTemperature = tempSum / float64(len(s))
	ins.AvgWindSpeed = windSum / float64(len(s))
	return ins
}
