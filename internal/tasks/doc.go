// Package tasks implements the site tasks: build and serve.
//
// Both tasks are thin passthroughs to the external hugo binary. The execution
// context (which executor runs commands, which binary, where logs and metrics go)
// is passed explicitly to every task so tests can substitute a fake executor.
//
// Serve is composed sequentially from Build: it runs Build first and only starts
// the server once the build command has exited zero.
package tasks
