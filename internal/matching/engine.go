package matching

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Engine runs the matching pipeline against in-memory snapshots. An Engine
// holds only its immutable configuration; it is safe for concurrent use and
// keeps no state between runs.
type Engine struct {
	cfg Config
}

// Options carries the per-run inputs beyond the two record sets.
type Options struct {
	// StatementFilters narrows the statement lines considered. Nil means
	// no filtering.
	StatementFilters *Filters

	// TransactionFilters narrows the ledger transactions considered. Nil
	// means no filtering.
	TransactionFilters *Filters

	// MaxMatches overrides the configured per-statement candidate cap when
	// positive.
	MaxMatches int
}

// NewEngine validates the configuration and returns an engine bound to it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matching configuration: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// FindMatches produces the ranked candidate pairings for one reconciliation
// run.
//
// Scoring is computed immutably for every (statement, transaction) pair that
// survives pre-filtering, fanned out across statements on a bounded worker
// pool. The greedy auto-accept pass then folds over statements in input
// order on a single goroutine: when a statement's best candidate clears the
// high-confidence threshold, the pairing is marked auto-matched and the
// transaction is withdrawn from every later statement's candidate list.
// Input order therefore decides which statement claims a contested
// transaction; reordering inputs can change the outcome, and no global
// re-optimization is attempted.
//
// Statements that produce no surviving candidate are omitted from the
// output. Empty inputs yield an empty result with all-zero statistics.
func (e *Engine) FindMatches(ctx context.Context, statements []Statement, transactions []Transaction, opts Options) (*Result, error) {
	maxMatches := e.cfg.MaxMatches
	if opts.MaxMatches > 0 {
		maxMatches = opts.MaxMatches
	}

	filteredStatements := filterStatements(statements, opts.StatementFilters)
	filteredTransactions := filterTransactions(transactions, opts.TransactionFilters)

	scored, err := e.scoreAll(ctx, filteredStatements, filteredTransactions)
	if err != nil {
		return nil, err
	}

	groups := e.consume(filteredStatements, scored, maxMatches)

	return &Result{
		Matches:    groups,
		Statistics: buildStatistics(groups, len(filteredStatements), len(filteredTransactions)),
	}, nil
}

// scoreAll computes the candidate list for every statement against every
// transaction. The result slice is indexed by statement position so the
// later consumption fold sees statements in input order regardless of
// worker scheduling. Each statement's candidates are sorted descending by
// confidence with a stable sort, so equal-confidence candidates keep the
// transaction input order.
func (e *Engine) scoreAll(ctx context.Context, statements []Statement, transactions []Transaction) ([][]Candidate, error) {
	scored := make([][]Candidate, len(statements))
	if len(statements) == 0 || len(transactions) == 0 {
		return scored, ctx.Err()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range statements {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			stmt := statements[i]
			candidates := make([]Candidate, 0, len(transactions))
			for _, tx := range transactions {
				if candidate, ok := e.scorePairSafe(stmt, tx); ok {
					candidates = append(candidates, candidate)
				}
			}

			sort.SliceStable(candidates, func(a, b int) bool {
				return candidates[a].Confidence > candidates[b].Confidence
			})

			scored[i] = candidates
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

// scorePairSafe wraps scorePair so a panic while scoring one malformed pair
// degrades to "no candidate" instead of aborting the whole run.
func (e *Engine) scorePairSafe(stmt Statement, tx Transaction) (candidate Candidate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			candidate, ok = Candidate{}, false
		}
	}()
	return scorePair(stmt, tx, e.cfg)
}

// consume is the sequential greedy pass. It walks statements in input
// order, drops candidates whose transaction was already claimed by an
// earlier auto-match, truncates to maxMatches, and auto-accepts the top
// candidate when it clears the high-confidence threshold.
func (e *Engine) consume(statements []Statement, scored [][]Candidate, maxMatches int) []StatementMatchGroup {
	usedTransactions := make(map[string]bool)
	usedStatements := make(map[string]bool)

	groups := make([]StatementMatchGroup, 0, len(statements))
	for i, stmt := range statements {
		if usedStatements[stmt.ID] {
			continue
		}

		candidates := make([]Candidate, 0, maxMatches)
		for _, c := range scored[i] {
			if usedTransactions[c.TransactionID] {
				continue
			}
			candidates = append(candidates, c)
			if len(candidates) == maxMatches {
				break
			}
		}

		if len(candidates) == 0 {
			continue
		}

		group := StatementMatchGroup{
			StatementID: stmt.ID,
			Candidates:  candidates,
		}

		if candidates[0].Confidence >= e.cfg.HighConfidence {
			candidates[0].AutoMatched = true
			group.AutoMatched = true
			usedStatements[stmt.ID] = true
			usedTransactions[candidates[0].TransactionID] = true
		}

		group.BestMatch = &group.Candidates[0]
		groups = append(groups, group)
	}

	return groups
}
