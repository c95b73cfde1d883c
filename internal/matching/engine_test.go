package matching

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	engine, err := NewEngine(DefaultConfig())
	s.Require().NoError(err)
	s.engine = engine
}

func statementFixture(id string, amount float64, day string, description, partyID string) Statement {
	return Statement{
		ID:          id,
		Amount:      decimal.NewFromFloat(amount),
		Date:        date(day),
		Description: description,
		PartyID:     partyID,
	}
}

func transactionFixture(id string, value float64, day string, description, partyID string) Transaction {
	return Transaction{
		ID:          id,
		Type:        TransactionTypeRevenue,
		Value:       decimal.NewFromFloat(value),
		Date:        date(day),
		Description: description,
		PartyID:     partyID,
	}
}

func (s *EngineTestSuite) TestFindMatches_ExactMatchAutoAccepted() {
	statements := []Statement{statementFixture("s1", -150.00, "2025-10-15", "PIX JOAO SILVA", "p1")}
	transactions := []Transaction{transactionFixture("t1", 150.00, "2025-10-15", "PIX JOAO SILVA", "p1")}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)

	group := result.Matches[0]
	s.Equal("s1", group.StatementID)
	s.True(group.AutoMatched)
	s.Require().NotNil(group.BestMatch)
	s.Equal(1.0, group.BestMatch.Confidence)
	s.Equal(ConfidenceHigh, group.BestMatch.ConfidenceLevel)
	s.True(group.BestMatch.AutoMatched)

	s.Equal(1, result.Statistics.AutoMatched)
	s.Equal(1.0, result.Statistics.MatchRate)
	s.Equal(1.0, result.Statistics.AutoMatchRate)
}

func (s *EngineTestSuite) TestFindMatches_NoMatchOmitted() {
	statements := []Statement{statementFixture("s1", 50.00, "2025-01-01", "COFFEE SHOP", "")}
	transactions := []Transaction{transactionFixture("t1", 50000.00, "2025-06-01", "OFFICE LEASE Q2", "")}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	s.Empty(result.Matches, "pairs below the confidence floor never appear")
	s.Equal(0, result.Statistics.TotalMatches)
	s.Equal(0.0, result.Statistics.MatchRate)
}

func (s *EngineTestSuite) TestFindMatches_EmptyInputs() {
	result, err := s.engine.FindMatches(context.Background(), nil, nil, Options{})
	s.Require().NoError(err)
	s.Empty(result.Matches)

	stats := result.Statistics
	s.Equal(0, stats.TotalStatements)
	s.Equal(0, stats.TotalTransactions)
	s.Equal(0, stats.TotalMatches)
	s.Equal(0.0, stats.MatchRate)
	s.Equal(0.0, stats.AutoMatchRate)
	s.Equal(0.0, stats.AverageConfidence)
}

func (s *EngineTestSuite) TestFindMatches_NoDoubleConsumption() {
	// Two statements both match t1 perfectly; the first one in input order
	// claims it, the second falls back to its remaining candidates.
	statements := []Statement{
		statementFixture("s1", -200.00, "2025-10-10", "RENT PAYMENT ACME", "p9"),
		statementFixture("s2", -200.00, "2025-10-10", "RENT PAYMENT ACME", "p9"),
	}
	transactions := []Transaction{
		transactionFixture("t1", 200.00, "2025-10-10", "RENT PAYMENT ACME", "p9"),
	}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)
	s.Equal("s1", result.Matches[0].StatementID, "greedy consumption follows statement input order")
	s.True(result.Matches[0].AutoMatched)

	autoMatchedTransactions := make(map[string]int)
	for _, group := range result.Matches {
		for _, c := range group.Candidates {
			if c.AutoMatched {
				autoMatchedTransactions[c.TransactionID]++
			}
		}
	}
	for txID, count := range autoMatchedTransactions {
		s.Equal(1, count, "transaction %s auto-matched more than once", txID)
	}
}

func (s *EngineTestSuite) TestFindMatches_Deterministic() {
	statements := make([]Statement, 0, 20)
	transactions := make([]Transaction, 0, 20)
	for i := 0; i < 20; i++ {
		day := fmt.Sprintf("2025-10-%02d", i+1)
		statements = append(statements, statementFixture(fmt.Sprintf("s%d", i), -float64(100+i), day, fmt.Sprintf("PAYMENT REF %04d", i), ""))
		transactions = append(transactions, transactionFixture(fmt.Sprintf("t%d", i), float64(100+i), day, fmt.Sprintf("PAYMENT REF %04d", i), ""))
	}

	first, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	second, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)

	s.Equal(first, second, "identical inputs must yield identical output")
}

func (s *EngineTestSuite) TestFindMatches_MaxMatchesTruncation() {
	statements := []Statement{statementFixture("s1", -100.00, "2025-10-15", "SUPPLIER PAYMENT", "")}

	transactions := make([]Transaction, 0, 8)
	for i := 0; i < 8; i++ {
		transactions = append(transactions, transactionFixture(
			fmt.Sprintf("t%d", i), 100.00+float64(i), "2025-10-15", "SUPPLIER PAYMENT", "",
		))
	}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)
	s.LessOrEqual(len(result.Matches[0].Candidates), DefaultConfig().MaxMatches)

	override, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{MaxMatches: 2})
	s.Require().NoError(err)
	s.Require().Len(override.Matches, 1)
	s.LessOrEqual(len(override.Matches[0].Candidates), 2)
}

func (s *EngineTestSuite) TestFindMatches_CandidatesSortedByConfidence() {
	statements := []Statement{statementFixture("s1", -100.00, "2025-10-15", "SUPPLIER PAYMENT", "")}
	transactions := []Transaction{
		transactionFixture("t1", 180.00, "2025-10-20", "SUPPLIER PAYMENT", ""),
		transactionFixture("t2", 100.00, "2025-10-15", "SUPPLIER PAYMENT", ""),
		transactionFixture("t3", 100.00, "2025-10-17", "SUPPLIER PAYMENT", ""),
	}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)

	candidates := result.Matches[0].Candidates
	for i := 1; i < len(candidates); i++ {
		s.GreaterOrEqual(candidates[i-1].Confidence, candidates[i].Confidence)
	}
	s.Equal("t2", candidates[0].TransactionID)
}

func (s *EngineTestSuite) TestFindMatches_StatementFilters() {
	cutoff := date("2025-10-10")
	statements := []Statement{
		statementFixture("s1", -100.00, "2025-10-05", "EARLY PAYMENT", ""),
		statementFixture("s2", -100.00, "2025-10-15", "LATE PAYMENT", ""),
	}
	transactions := []Transaction{
		transactionFixture("t1", 100.00, "2025-10-05", "EARLY PAYMENT", ""),
		transactionFixture("t2", 100.00, "2025-10-15", "LATE PAYMENT", ""),
	}

	result, err := s.engine.FindMatches(context.Background(), statements, transactions, Options{
		StatementFilters: &Filters{StartDate: &cutoff},
	})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)
	s.Equal("s2", result.Matches[0].StatementID)
	s.Equal(1, result.Statistics.TotalStatements, "statistics count the filtered set")
}

func (s *EngineTestSuite) TestFindMatches_ContextCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	statements := make([]Statement, 50)
	transactions := make([]Transaction, 50)
	for i := range statements {
		statements[i] = statementFixture(fmt.Sprintf("s%d", i), 100, "2025-10-15", "PAYMENT", "")
		transactions[i] = transactionFixture(fmt.Sprintf("t%d", i), 100, "2025-10-15", "PAYMENT", "")
	}

	_, err := s.engine.FindMatches(ctx, statements, transactions, Options{})
	s.ErrorIs(err, context.Canceled)
}

func TestEngine_ReusableAcrossRuns(t *testing.T) {
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	statements := []Statement{statementFixture("s1", -150.00, "2025-10-15", "PIX JOAO SILVA", "p1")}
	transactions := []Transaction{transactionFixture("t1", 150.00, "2025-10-15", "PIX JOAO SILVA", "p1")}

	for i := 0; i < 3; i++ {
		result, err := engine.FindMatches(context.Background(), statements, transactions, Options{})
		require.NoError(t, err)
		require.Len(t, result.Matches, 1, "engine must be stateless between runs")
	}
}

func TestEngine_LargeBatchCompletes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large batch test in short mode")
	}

	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	statements := make([]Statement, 0, 300)
	transactions := make([]Transaction, 0, 300)
	base := date("2025-01-01")
	for i := 0; i < 300; i++ {
		day := base.AddDate(0, 0, i%90).Format("2006-01-02")
		statements = append(statements, statementFixture(fmt.Sprintf("s%d", i), -float64(10+i), day, fmt.Sprintf("BATCH ITEM %d", i), ""))
		transactions = append(transactions, transactionFixture(fmt.Sprintf("t%d", i), float64(10+i), day, fmt.Sprintf("BATCH ITEM %d", i), ""))
	}

	start := time.Now()
	result, err := engine.FindMatches(context.Background(), statements, transactions, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)
	require.Less(t, time.Since(start), 30*time.Second)
}
