// Package cli implements the command-line interface of the collector.
//
// The cli package provides the Cobra-based CLI: collecting a term's
// schedule into the archive, inspecting and filtering archived snapshots,
// aggregate statistics, data-quality validation, and export to CSV, ICS,
// and XLSX. It coordinates the collector, parser, storage, and calendar
// packages.
package cli
