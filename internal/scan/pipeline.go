package scan

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/classify"
	"github.com/purnamedha/riskscan/internal/metrics"
)

// Pipeline runs classification, deduplication and aggregation over raw
// documents. It holds only the immutable catalog, so one Pipeline is safe
// for concurrent Run calls; each run starts from an empty accumulator.
type Pipeline struct {
	catalog *catalog.Catalog
}

// NewPipeline builds a pipeline around the given catalog.
func NewPipeline(cat *catalog.Catalog) *Pipeline {
	return &Pipeline{catalog: cat}
}

// Run is the single entry point of the core: classify every raw document,
// drop near-duplicates, aggregate counts. It is total over any well-formed
// input; the empty list yields total=0 with all pre-seeded counts at zero.
func (p *Pipeline) Run(raw []RawDocument) *Result {
	start := time.Now()

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		metrics.DocumentsProcessed.Inc()
		res := classify.Classify(p.catalog, r.CombinedText())
		docs = append(docs, NewDocument(r, res))
	}

	unique := Deduplicate(docs)
	result := Aggregate(p.catalog, unique)
	result.ScanID = ulid.Make().String()
	result.ScanDate = time.Now().UTC().Format("2006-01-02 15:04 UTC")

	metrics.ObserveScan(time.Since(start))
	return result
}
