// Package collector fetches schedule listing pages and feeds them to the
// parser.
//
// The collector owns everything the parser deliberately does not: HTTP
// access with retry and rate limiting, and the goquery traversal that turns
// the page's table markup into the parser's positional row sequence. One
// Collect call produces one timestamped schedule snapshot for one term.
package collector
