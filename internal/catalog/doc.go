// Package catalog holds every loaded tracking-number definition and answers
// lookups over the full set. All reads are over immutable definitions, so a
// catalog is safe to share between goroutines without synchronisation.
package catalog
