// Package harness runs the timekeeper binary in isolated environments for
// end-to-end tests.
//
// Each environment gets its own TIMEKEEPER_HOME, so the store and the settings
// file never leak between tests. TIMEKEEPER_DEBUG is cleared.
package harness
