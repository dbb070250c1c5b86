package risk

// Stats counts components per risk level across a portfolio
type Stats struct {
	Safe     int `json:"safe"`
	Warning  int `json:"warning"`
	Danger   int `json:"danger"`
	Critical int `json:"critical"`
	Legal    int `json:"legal"`
	Total    int `json:"total"`
}

// Summarize folds per-component levels into portfolio counts. Pure
// aggregation, invariant under reordering of the input; the per-level
// counts always sum to Total.
func Summarize(levels []Level) Stats {
	var stats Stats
	for _, level := range levels {
		switch level {
		case LevelWarning:
			stats.Warning++
		case LevelDanger:
			stats.Danger++
		case LevelCritical:
			stats.Critical++
		case LevelLegal:
			stats.Legal++
		default:
			stats.Safe++
		}
		stats.Total++
	}
	return stats
}
