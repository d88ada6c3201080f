// Package dataprocessing implements the extraction pipeline for election
// vote-ranking feed documents.
//
// # Architecture
//
// The pipeline runs six stages per document, each producing a new value
// consumed by the next:
//
//	raw bytes → Resolver → decoded text
//	decoded text → ExtractContent → (headline, body)
//	body → Normalizer → half-width body
//	body → Classifier → header + candidate rows
//	rows → CoerceColumns → typed record set
//	record set → Segmenter → full / winner / loser reports
//
// Failures are typed (internal/errors) and recovered per document: the
// batch driver logs the failure kind and continues with the next file.
//
// # Usage
//
//	proc := dataprocessing.NewProcessor(cfg.Processing, exporter.NewExcelWriter())
//	result, err := proc.ProcessDocument(ctx, "kaihyou_0123.xml")
//
// # Testing
//
// The package includes tests for every stage. Use table-driven tests
// when adding new functionality.
package dataprocessing
