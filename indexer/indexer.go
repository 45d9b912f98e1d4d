// Package indexer builds sorted word indexes out of many documents.
// Tokenization fans out across an ants worker pool; every worker fills
// its own private set, so no tree is ever touched by two goroutines,
// and the coordinator merges finished batches from a single owner.
package indexer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/brownthomasp/xord/lib/set"
	"github.com/brownthomasp/xord/word"
	"github.com/brownthomasp/xord/xlog"
)

type Indexer struct {
	pool           *ants.Pool
	logger         xlog.XLogger
	stats          *indexerStats
	name           string
	workers        int
	isDesc         bool
	isStatsEnabled bool
}

type IndexerOpt func(*Indexer)

func WithIndexerWorkers(n int) IndexerOpt {
	return func(ix *Indexer) {
		ix.workers = n
	}
}

func WithIndexerDesc() IndexerOpt {
	return func(ix *Indexer) {
		ix.isDesc = true
	}
}

func WithIndexerLogger(logger xlog.XLogger) IndexerOpt {
	return func(ix *Indexer) {
		ix.logger = logger
	}
}

func WithIndexerStats() IndexerOpt {
	return func(ix *Indexer) {
		ix.isStatsEnabled = true
	}
}

func NewIndexer(name string, opts ...IndexerOpt) (*Indexer, error) {
	ix := &Indexer{
		name:    name,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(ix)
	}
	if ix.workers <= 0 {
		return nil, fmt.Errorf("[indexer] invalid worker number (%d)", ix.workers)
	}
	if ix.logger == nil {
		ix.logger = xlog.NewXLogger("indexer")
	}

	pool, err := ants.NewPool(ix.workers,
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(ix.logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("[indexer] new worker pool: %w", err)
	}
	ix.pool = pool

	if ix.isStatsEnabled {
		ix.stats = newIndexerStats(ix.name)
	}
	return ix, nil
}

// BuildIndex tokenizes every document and merges the words into one
// sorted, duplicate-free index. Each pool worker owns a throwaway set
// for its document; the result set is only written by this goroutine.
func (ix *Indexer) BuildIndex(ctx context.Context, docs []string) (*set.SortedSet[string], error) {
	startedAt := time.Now()

	var result *set.SortedSet[string]
	if ix.isDesc {
		result = set.NewSortedSet[string](set.WithSortedSetDesc[string]())
	} else {
		result = set.NewSortedSet[string]()
	}
	if len(docs) == 0 {
		return result, nil
	}

	// Buffered to the document count, so workers never block on send.
	batchC := make(chan []string, len(docs))
	var wg sync.WaitGroup
	for _, doc := range docs {
		doc := doc
		wg.Add(1)
		if err := ix.pool.Submit(func() {
			defer wg.Done()
			sorter := word.NewSorter()
			sorter.InsertText(doc)
			batchC <- sorter.Words()
			sorter.Release()
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("[indexer] submit tokenize job: %w", err)
		}
	}
	go func() {
		wg.Wait()
		close(batchC)
	}()

	var inserted, dups int64
	for {
		select {
		case batch, ok := <-batchC:
			if !ok {
				ix.stats.IncreaseDocsIndexedCount(int64(len(docs)))
				ix.stats.RecordWordsInserted(inserted)
				ix.stats.RecordWordsDuplicated(dups)
				ix.stats.RecordIndexBuildDuration(time.Since(startedAt).Milliseconds())
				ix.logger.Info("index built",
					zap.Int("docs", len(docs)),
					zap.Int64("words", inserted),
					zap.Int64("dups", dups),
				)
				return result, nil
			}
			for _, w := range batch {
				if result.Add(w) {
					inserted++
				} else {
					dups++
				}
			}
		case <-ctx.Done():
			result.Release()
			return nil, ctx.Err()
		}
	}
}

func (ix *Indexer) Release() {
	ix.pool.Release()
}
