// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose a function field per interface method plus default return
// values, and record every call so tests can assert on what reached them:
//
//	taskStore := &mocks.MockTaskStore{
//	    DeleteFn: func(ctx context.Context, id int64, userID string) (int64, error) {
//	        return 0, nil
//	    },
//	}
//	// ...
//	assert.Equal(t, 1, taskStore.DeleteCalls.Count)
//
// InMemoryTaskStore is a working store.TaskStore backed by a map, for tests
// that need real ownership semantics without a database.
package mocks
