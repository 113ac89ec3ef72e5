// Package logger provides leveled, colored logging for devsecrets CLI
// commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors always print to stderr. Commands create a logger in
// their PersistentPreRun from the flag values:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("resolved manifest at %s", path)
package logger
