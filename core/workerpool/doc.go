// Package workerpool runs many independent lookups with bounded concurrency.
//
// A Pool drains a queue of inputs with a fixed number of workers. Each worker blocks on the
// queue channel, applies the work function, and records either an output or an error for
// that input. One failing item never stops the others: the batch always completes and every
// queued item is accounted for exactly once.
//
// # Lifecycle
//
// A Pool instance serves one batch at a time. Calling Run or Drain while a previous call on
// the same instance is still in flight returns ErrAlreadyRunning. Callers normally create a
// fresh Pool per batch.
//
// # Usage
//
//	pool := workerpool.New(6, func(ctx context.Context, id steam.PlayerID) (catalog.Library, error) {
//	    return cat.GamesForPlayer(ctx, id)
//	})
//	batch, err := pool.Run(ctx, players)
//	if err != nil {
//	    return err // ErrAlreadyRunning
//	}
//	for _, r := range batch.Failures() {
//	    log.Warn("lookup failed", zap.Any("input", r.Input), zap.Error(r.Err))
//	}
package workerpool
