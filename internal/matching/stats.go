package matching

// buildStatistics aggregates run statistics over the final match groups.
// It never fails on empty inputs; all rates degrade to zero.
func buildStatistics(groups []StatementMatchGroup, totalStatements, totalTransactions int) RunStatistics {
	stats := RunStatistics{
		TotalStatements:   totalStatements,
		TotalTransactions: totalTransactions,
	}

	var confidenceSum float64
	for _, group := range groups {
		if group.AutoMatched {
			stats.AutoMatched++
		}
		for _, c := range group.Candidates {
			stats.TotalMatches++
			confidenceSum += c.Confidence

			switch c.ConfidenceLevel {
			case ConfidenceHigh:
				stats.ConfidenceDistribution.High++
			case ConfidenceMedium:
				stats.ConfidenceDistribution.Medium++
			case ConfidenceLow:
				stats.ConfidenceDistribution.Low++
			}
		}
	}

	if stats.TotalMatches > 0 {
		stats.AverageConfidence = confidenceSum / float64(stats.TotalMatches)
	}

	if totalStatements > 0 {
		stats.MatchRate = float64(len(groups)) / float64(totalStatements)
		stats.AutoMatchRate = float64(stats.AutoMatched) / float64(totalStatements)
	}

	return stats
}
