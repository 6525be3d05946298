// Package logger builds configured log/slog loggers.
//
// The factory defaults to JSON output at info level; development
// environments switch to readable text output at debug level:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("NAMEKIT_ENV"))),
//	    logger.WithAttrs(slog.String("component", "namegen")),
//	)
//	svc := namegen.NewService(store, namegen.WithLogger(log))
package logger
