// Package tmux provides a Go client for programmatic interaction with tmux.
//
// This package focuses on the operations needed to route commands into a
// long-lived program running in a tmux pane:
//
//   - Window and split creation that reports back the new pane's locator
//     (see [Client.NewWindow], [Client.SplitWindow])
//   - Server-wide pane enumeration for liveness checks (see [Client.ListPaneIDs])
//   - Synthetic keystrokes and pane selection (see [Client.SendKeys],
//     [Client.SelectPane])
//   - Small string persistence in the tmux session environment
//     (see [Client.GetEnv], [Client.SetEnv])
//
// # Requirements
//
// The client shells out to the tmux binary; every operation other than
// [Client.InsideTmux] requires a running tmux server. Use
// [Client.InsideTmux] to check that the current process is attached to
// one before issuing commands.
//
// # Example Usage
//
//	ctx := context.Background()
//	client := tmux.NewClient()
//
//	if !client.InsideTmux() {
//	    log.Fatal("not running inside a tmux session")
//	}
//
//	// Open a new window running vim and capture where it ended up.
//	locator, err := client.NewWindow(ctx, tmux.CreateOptions{
//	    Dir:     "/path/to/project",
//	    Command: "vim main.go",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Remember something across invocations.
//	if err := client.SetEnv(ctx, "_demo_window", locator); err != nil {
//	    log.Fatal(err)
//	}
package tmux
