package libemit

// Logger is the logging contract used by the emitter for advisory
// diagnostics. The core never logs listener errors; only the one-shot
// listener-count overflow warning goes through Warnf.
type Logger interface {
	WithField(key string, value any) Logger
	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)
}

// noopLogger discards everything. It is the default logger so that emitters
// stay silent unless a caller opts into diagnostics.
type noopLogger struct{}

func (l noopLogger) WithField(string, any) Logger { return l }
func (l noopLogger) Debug(...any)                 {}
func (l noopLogger) Debugf(string, ...any)        {}
func (l noopLogger) Debugln(...any)               {}
func (l noopLogger) Info(...any)                  {}
func (l noopLogger) Infof(string, ...any)         {}
func (l noopLogger) Infoln(...any)                {}
func (l noopLogger) Warn(...any)                  {}
func (l noopLogger) Warnf(string, ...any)         {}
func (l noopLogger) Warnln(...any)                {}
func (l noopLogger) Error(...any)                 {}
func (l noopLogger) Errorf(string, ...any)        {}
func (l noopLogger) Errorln(...any)               {}
