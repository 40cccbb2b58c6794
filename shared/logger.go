package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks reddit_parrot/shared ILogger

// ILogger is the subset of charmbracelet/log's Logger that the rest of the code uses.
type ILogger interface {
	Debug(msg any, keyvals ...any)
	Debugf(format string, args ...any)
	Info(msg any, keyvals ...any)
	Infof(format string, args ...any)
	Warn(msg any, keyvals ...any)
	Warnf(format string, args ...any)
	Error(msg any, keyvals ...any)
	Errorf(format string, args ...any)
	Printf(format string, args ...any)
}
