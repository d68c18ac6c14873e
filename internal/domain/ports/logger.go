package ports

// Logger é o log estruturado usado por serviços e middlewares.
// Os args seguem pares chave/valor, como em log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With devolve um logger que anexa os pares a toda entrada
	With(args ...any) Logger
}
