package core

// Logger is the app-wide leveled logging contract.
// Implementations may inspect args for known types (errors, user objects)
// and report them to an external service.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
