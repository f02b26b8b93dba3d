// Package worker provides a worker pool for replaying game scripts in parallel.
// Each script is played in its own engine game, so workers share nothing.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script *replay.Script
	Index  int // Submission order, for callers that report in input order
}

// ProcessResult is the outcome of one replayed script.
type ProcessResult struct {
	Index  int
	Result replay.Result
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that plays each script under rules.
func ReplayFunc(rules config.Rules) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Result: replay.Run(item.Script, rules)}
	}
}

// Pool replays scripts on a fixed set of goroutines.
type Pool struct {
	numWorkers    int
	bufferSize    int
	stopOnFailure bool
	workChan      chan WorkItem
	resultChan    chan ProcessResult
	processFunc   ProcessFunc
	wg            sync.WaitGroup
	stopFlag      int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the size of the work and result buffers. Values below
// 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnFailure stops the pool as soon as a script is rejected. Scripts
// still queued at that point produce no result.
func WithStopOnFailure() PoolOption {
	return func(p *Pool) {
		p.stopOnFailure = true
	}
}

// NewPool creates a pool that runs processFunc on every submitted item.
// Default: 1 worker, buffer size of 10.
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
		res := p.processFunc(item)
		if p.stopOnFailure && !res.Result.OK() {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit queues a work item, blocking while the buffer is full. It returns
// false, without queueing, once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	p.workChan <- item
	return true
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
