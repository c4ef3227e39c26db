package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// noopProcessFunc returns a process function that counts nothing.
func noopProcessFunc() ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter
// and reports Depth as the node count.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: uint64(item.Depth)}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func item(i int) WorkItem {
	return WorkItem{
		Move:  chess.Move{From: chess.Pos(i%8, 1), To: chess.Pos(i%8, 2)},
		Depth: i,
		Index: i,
	}
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	var total uint64
	results := 0
	for r := range pool.Results() {
		total += r.Nodes
		results++
	}
	if results != numItems {
		t.Errorf("results = %d; want %d", results, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
	// 0+1+...+9
	if total != 45 {
		t.Errorf("sum of Nodes = %d; want 45", total)
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(5))
	pool.Start(context.Background())

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

func TestPoolCancelledMidway(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(_ context.Context, item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start(ctx)

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	time.Sleep(30 * time.Millisecond)
	cancel()

	go pool.Close()
	results := collectResults(pool)

	processed := atomic.LoadInt32(&processedCount)
	if processed >= numItems {
		t.Errorf("processed = %d after cancel; want fewer than %d", processed, numItems)
	}
	if results != int(processed) {
		t.Errorf("results = %d; want one per processed item (%d)", results, processed)
	}
}

func TestPoolCancelledBeforeStart(t *testing.T) {
	var processed int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(10))
	pool.Start(ctx)
	for i := 0; i < 10; i++ {
		pool.Submit(item(i))
	}
	go pool.Close()

	if got := collectResults(pool); got != 0 {
		t.Errorf("results = %d; want 0", got)
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0", got)
	}
}

func TestPoolPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "root")

	pool := NewPool(func(ctx context.Context, item WorkItem) ProcessResult {
		if ctx.Value(key{}) != "root" {
			return ProcessResult{Index: item.Index, Error: context.Canceled}
		}
		return ProcessResult{Index: item.Index}
	}, WithWorkers(2))
	pool.Start(ctx)
	for i := 0; i < 4; i++ {
		pool.Submit(item(i))
	}
	go pool.Close()

	for r := range pool.Results() {
		if r.Error != nil {
			t.Errorf("item %d did not receive the Start context", r.Index)
		}
	}
}

func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(_ context.Context, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start(context.Background())

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(item(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 64},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 64},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 64},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 64},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
