// Package launcher frees the SSH port and hands the process over to sshd.
//
// Run performs one linear pass:
//
//	probe    list listeners on the configured port
//	reclaim  only if the port is in use: signal processes matching the pattern
//	settle   only after a reclaim: pause so the kernel can release the socket
//	report   print what was found and done
//	handoff  exec the target binary with the foreground flag
//
// Handoff replaces the current process image and does not return on
// success. There are no retries, and the port is not probed again after
// settling; if it is still taken, sshd's own bind reports it.
//
// Every collaborator is injectable through Options so the sequence can be
// exercised without touching real sockets, processes, or exec:
//
//	l := launcher.New(cfg,
//	    launcher.WithProber(port.NewMockProber()),
//	    launcher.WithKiller(reclaim.NewMockKiller()),
//	    launcher.WithExecutor(system.NewMockExecutor("/usr/sbin/sshd")),
//	    launcher.WithSleep(func(context.Context, time.Duration) error { return nil }),
//	)
package launcher
