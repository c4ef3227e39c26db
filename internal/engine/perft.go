package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Depth 0 counts the state itself.
func Perft(state chess.GameState, depth int) uint64 {
	nodes, _ := perft(context.Background(), state, depth)
	return nodes
}

// perft is Perft that gives up with ctx.Err() at the first interior node
// visited after ctx is done.
func perft(ctx context.Context, state chess.GameState, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := AllLegalMoves(state)
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var nodes uint64
	for _, m := range moves {
		n, err := perft(ctx, m.After, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// DivideResult is the leaf count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each legal root move, spreading the root moves
// over a pool of workers. Results are sorted by move text. It returns
// ctx.Err() if the context is cancelled before every subtree is counted;
// subtrees being counted at that moment stop promptly.
func Divide(ctx context.Context, state chess.GameState, depth, workers int) ([]DivideResult, error) {
	if depth < 1 {
		return nil, nil
	}
	roots := AllLegalMoves(state)

	pool := worker.NewPool(func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		nodes, err := perft(ctx, item.Move.After, item.Depth)
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: nodes,
			Error: err,
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start(ctx)

	go func() {
		for i, m := range roots {
			pool.Submit(worker.WorkItem{Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	results := make([]DivideResult, 0, len(roots))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			continue
		}
		results = append(results, DivideResult{Move: r.Move, Nodes: r.Nodes})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	// Items skipped after cancellation produce no result.
	if len(results) != len(roots) {
		return nil, ctx.Err()
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results, nil
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
