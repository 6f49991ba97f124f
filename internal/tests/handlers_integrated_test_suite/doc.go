// Package handlers_integrated_test_suite runs the HTTP handler tests against Postgres.
// The tests are skipped unless TEST_DATABASE_URL points at a database they may truncate.
package handlers_integrated_test_suite
