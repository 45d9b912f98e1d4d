package indexer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	IndexerStatsName = "xord/indexer"
)

// All record methods are nil-receiver safe, so the hot path never has
// to branch on whether stats collection is enabled.
type indexerStats struct {
	docsIndexedCount     metric.Int64Counter
	wordsInsertedCount   metric.Int64Counter
	wordsDuplicatedCount metric.Int64Counter
	indexBuildDurations  metric.Int64Histogram
}

func (stats *indexerStats) IncreaseDocsIndexedCount(count int64) {
	if stats == nil {
		return
	}
	stats.docsIndexedCount.Add(context.Background(), count)
}

func (stats *indexerStats) RecordWordsInserted(count int64) {
	if stats == nil {
		return
	}
	stats.wordsInsertedCount.Add(context.Background(), count)
}

func (stats *indexerStats) RecordWordsDuplicated(count int64) {
	if stats == nil {
		return
	}
	stats.wordsDuplicatedCount.Add(context.Background(), count)
}

func (stats *indexerStats) RecordIndexBuildDuration(durationMs int64) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("indexer.build.duration.ms", strconv.FormatInt(durationMs, 10)),
	)
	stats.indexBuildDurations.Record(context.Background(), durationMs, metric.WithAttributeSet(as))
}

func newIndexerStats(name string) *indexerStats {
	meterName := fmt.Sprintf("%s/%s", IndexerStatsName, name)
	stats := &indexerStats{
		docsIndexedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"indexer.docs.indexed.count",
				metric.WithDescription("The number of documents indexed."),
			)),
		wordsInsertedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"indexer.words.inserted.count",
				metric.WithDescription("The number of distinct words merged into indexes."),
			)),
		wordsDuplicatedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"indexer.words.duplicated.count",
				metric.WithDescription("The number of duplicate words collapsed during merges."),
			)),
		indexBuildDurations: lo.Must[metric.Int64Histogram](otel.Meter(meterName).
			Int64Histogram(
				"indexer.build.durations",
				metric.WithDescription("The time cost of building one index."),
				metric.WithUnit("milliseconds"),
			)),
	}
	return stats
}
