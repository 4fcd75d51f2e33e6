// Package worker provides a worker pool for playing independent games in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// WorkItem describes one game to be played.
type WorkItem struct {
	Index    int    // Game number within the match, from 0
	StartFEN string // Starting position; empty for the initial position
	Seed     int64  // Random seed for this game's searcher
}

// ProcessResult represents the outcome of one game.
type ProcessResult struct {
	Index     int
	Result    string           // "1-0", "0-1", "1/2-1/2" or "*" if unfinished
	Status    chess.GameStatus // Status when play stopped
	Moves     []string         // Moves played, in SAN
	Board     *chess.Board     // Final board position (may be nil)
	Nodes     uint64           // Search nodes visited over the game
	Duplicate bool             // Final position already reached by another game
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers playing games in parallel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that plays games with processFunc.
// It defaults to 1 worker and a buffer of 10 games.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a game, blocking while the buffer is full. It returns false
// without queueing once the pool is stopped or ctx is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop makes workers skip the games still queued. A game in progress runs
// until its own context ends.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results delivers finished games in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
