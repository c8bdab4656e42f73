// Package teardown provides guaranteed, ordered release of process-wide
// resources at shutdown.
//
// A Guard wraps a release function and runs it at most once, no matter
// how many times it is triggered. A Registry collects guards and releases
// them in reverse registration order, the way dependent resources must be
// torn down: what was created last goes first.
//
// Go has no hook that runs automatically at process exit, so the
// application decides when teardown happens and calls [Close] (or
// [Registry.Close] on its own registry) before returning from main.
//
// # Usage
//
//	db := openDatabase()
//	teardown.Add("database", func(ctx context.Context) error {
//	    return db.Close()
//	})
//
//	defer teardown.Close(context.Background())
package teardown
