// Package retry wraps remote API calls in exponential backoff.
//
// Every Gmail and Drive round trip in this application is a blocking network
// call; transient faults (rate limits, 5xx, connection resets) are retried a
// bounded number of times, while client errors fail fast.
package retry
