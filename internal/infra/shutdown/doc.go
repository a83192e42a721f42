// Package shutdown runs cleanup hooks when TeachWhat stops.
//
// The interactive shell runs inside Handler.Run. SIGINT or SIGTERM cancels
// its context; once it returns, the registered hooks run in reverse order
// of registration under a timeout:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return manager.Close(ctx) })
//	err := h.Run(ctx, shell.Run)
package shutdown
