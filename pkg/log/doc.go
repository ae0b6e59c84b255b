// Package log provides the logging abstraction used by chatpost.
//
// Components depend on the Logger interface only. The zerolog adapter is
// what the CLI wires in; the no-op logger is what tests and library users
// get by default.
//
//	logger, closer, err := log.New(log.Options{Level: "debug"})
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
//
// Console output is human readable when stderr is a terminal and JSON
// lines otherwise. Setting Options.File additionally writes JSON lines to
// a size-rotated file.
package log
