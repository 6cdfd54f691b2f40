// Package async implements a minimal future pattern for error-only
// asynchronous operations, used to fan out per-recipient notification work.
//
//	futures := make([]*async.ExecFuture, 0, len(recipients))
//	for _, r := range recipients {
//		futures = append(futures, async.Exec(ctx, r, notifyOne))
//	}
//	err := async.ExecAll(futures...)
//
// ExecAll waits for every future and joins all errors with errors.Join, so a
// single failed recipient does not mask the rest of the batch.
package async
