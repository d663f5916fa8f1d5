// Package testdb provides utilities for database integration tests.
//
// Tests run inside a transaction that is rolled back when the test
// completes, so they can share one database and run in parallel:
//
//	func TestTaskStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t) // skips when no database is configured
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The connection string comes from DATABASE_URL, or TASKS_TEST_DB_URL when
// DATABASE_URL is unset. GetTestDBWithT applies the embedded migrations
// before returning.
package testdb
