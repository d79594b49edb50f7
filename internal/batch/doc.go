// Package batch executes mastering work items across a bounded worker pool.
//
// Each item runs to a terminal outcome independently; one bad file never
// prevents the rest of the batch from completing. Outcomes are aggregated
// under a mutex and surfaced in completion order, alongside a structured
// event stream that the presentation layer renders.
package batch
