// Package report accumulates per-product outcomes for a sync or audit run
// and persists them as a JSON file, overwritten each run. The accumulator is
// owned by a single driver goroutine; it is not safe for concurrent use and
// does not need to be.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Outcome is the terminal state a product reached during a sync run.
type Outcome string

const (
	OutcomeUpdated    Outcome = "updated"
	OutcomeNormalized Outcome = "normalized"
	OutcomeSkipped    Outcome = "skippedHasZones"
	OutcomeNotFound   Outcome = "notFound"
	OutcomeErrored    Outcome = "errored"
)

// Format is the audit classification of a product's existing metafield.
type Format string

const (
	FormatNone  Format = "none"
	FormatOld   Format = "old"
	FormatNew   Format = "new"
	FormatMixed Format = "mixed"
)

// ProductDetail records what happened to one product.
type ProductDetail struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Zones     []string `json:"zones,omitempty"`
	MatchType string   `json:"matchType,omitempty"`
	Error     string   `json:"error,omitempty"`
	// Applied is false when dry-run computed a write but did not perform it.
	Applied bool `json:"applied"`
}

// SyncReport is the durable output of a sync run.
type SyncReport struct {
	Timestamp time.Time                   `json:"timestamp"`
	DryRun    bool                        `json:"dryRun"`
	Counts    map[Outcome]int             `json:"counts"`
	Details   map[Outcome][]ProductDetail `json:"details"`
}

// NewSyncReport creates an empty sync report accumulator.
func NewSyncReport(dryRun bool) *SyncReport {
	return &SyncReport{
		Timestamp: time.Now().UTC(),
		DryRun:    dryRun,
		Counts:    make(map[Outcome]int),
		Details:   make(map[Outcome][]ProductDetail),
	}
}

// Add records a product outcome.
func (r *SyncReport) Add(outcome Outcome, detail ProductDetail) {
	r.Counts[outcome]++
	r.Details[outcome] = append(r.Details[outcome], detail)
}

// Total returns the number of products processed.
func (r *SyncReport) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Save writes the report as indented JSON, replacing any previous run's file.
func (r *SyncReport) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Summary renders the console block printed when a run completes.
func (r *SyncReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sync complete: %d products", r.Total())
	if r.DryRun {
		b.WriteString(" (dry run, no writes performed)")
	}
	b.WriteString("\n")
	for _, outcome := range []Outcome{OutcomeUpdated, OutcomeNormalized, OutcomeSkipped, OutcomeNotFound, OutcomeErrored} {
		fmt.Fprintf(&b, "  %-16s %d\n", outcome, r.Counts[outcome])
	}
	return b.String()
}

// AuditReport is the durable output of an audit run.
type AuditReport struct {
	Timestamp time.Time                  `json:"timestamp"`
	Counts    map[Format]int             `json:"counts"`
	Details   map[Format][]ProductDetail `json:"details"`
}

// NewAuditReport creates an empty audit report accumulator.
func NewAuditReport() *AuditReport {
	return &AuditReport{
		Timestamp: time.Now().UTC(),
		Counts:    make(map[Format]int),
		Details:   make(map[Format][]ProductDetail),
	}
}

// Add records a product classification.
func (r *AuditReport) Add(format Format, detail ProductDetail) {
	r.Counts[format]++
	r.Details[format] = append(r.Details[format], detail)
}

// Total returns the number of products classified.
func (r *AuditReport) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Save writes the report as indented JSON, replacing any previous run's file.
func (r *AuditReport) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Summary renders the console block printed when an audit completes.
func (r *AuditReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Audit complete: %d products\n", r.Total())
	for _, format := range []Format{FormatNone, FormatOld, FormatNew, FormatMixed} {
		fmt.Fprintf(&b, "  %-8s %d\n", format, r.Counts[format])
	}
	return b.String()
}
