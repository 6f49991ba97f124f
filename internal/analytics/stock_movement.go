package analytics

// StockMovementDays is the fixed window of the stock movement chart.
// It does not follow the selected DateRange.
const StockMovementDays = 30

// StockMovementSeries fabricates daily stock in/out figures for the last 30 days.
func (e *Engine) StockMovementSeries() []StockMovement {
	series := make([]StockMovement, 0, StockMovementDays)
	for _, date := range e.dayLabels(StockMovementDays) {
		in := randomIn(e.rnd, 10, 60)
		out := randomIn(e.rnd, 5, 45)
		series = append(series, StockMovement{
			Date:      date,
			StockIn:   in,
			StockOut:  out,
			NetChange: in - out,
		})
	}
	return series
}
