// Package schedule defines the course schedule data model.
//
// The schedule package holds the types produced by one collection run: course
// sections with their meeting patterns, enrollment counts, and delivery mode,
// grouped into a timestamped snapshot for one academic term. All types carry
// JSON tags because snapshots are archived as JSON files.
package schedule
