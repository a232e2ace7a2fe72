// Package todotests contains the TodoItems contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to TodoItems, such as test contexts,
// filtering and result reporting, is in the lower-level framework package.
package todotests
