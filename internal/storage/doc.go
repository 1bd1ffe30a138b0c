// Package storage archives schedule snapshots on disk.
//
// Each collection run writes a timestamped JSON file per term
// (schedule_TERMCODE_TIMESTAMP.json, optionally gzip-compressed) and
// refreshes a schedule_TERMCODE_latest symlink so consumers can read the
// newest snapshot without listing the directory. A capped metadata log
// records the outcome of recent collection runs.
package storage
