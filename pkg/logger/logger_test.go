package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(Logger, string)
		expectedLevel zapcore.Level
	}{
		{
			name:          "Info",
			log:           func(l Logger, msg string) { l.Info(msg) },
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Debug",
			log:           func(l Logger, msg string) { l.Debug(msg) },
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "Warn",
			log:           func(l Logger, msg string) { l.Warn(msg) },
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Error",
			log:           func(l Logger, msg string) { l.Error(msg) },
			expectedLevel: zapcore.ErrorLevel,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			observerLogger, logs := observer.New(zap.DebugLevel)
			dut := &ZapLogger{zap.New(observerLogger)}
			const testMessage = "ABC"

			tc.log(dut, testMessage)

			require.Equal(t, 1, logs.Len())
			actualMessage := logs.All()[0]
			require.Equal(t, testMessage, actualMessage.Message)
			require.Empty(t, actualMessage.ContextMap())
			require.Equal(t, tc.expectedLevel, actualMessage.Level)
		})
	}
}

func TestWithFields(t *testing.T) {
	logger, logs := NewObserverLogger("debug")

	const testMessage = "ABC"

	newLogger := logger.With(
		zap.String("scenario", "push/persistent"),
	)

	newLogger.Info(testMessage)

	// Check that child message carries the context fields
	expectedZapFields := map[string]interface{}{
		"scenario": "push/persistent",
	}
	childMessage := logs.All()[0]
	require.Equal(t, expectedZapFields, childMessage.ContextMap())

	// Check that parent message does not carry the context fields
	logger.Info(testMessage)
	parentMessage := logs.All()[1]
	require.Empty(t, parentMessage.ContextMap())
}

func TestObserverLoggerLevel(t *testing.T) {
	logger, logs := NewObserverLogger("warn")

	logger.Info("dropped")
	logger.Warn("kept")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestNewLogger(t *testing.T) {
	t.Run("none_is_noop", func(t *testing.T) {
		l, err := NewLogger("json", "none")
		require.NoError(t, err)
		require.NotNil(t, l)
		l.Info("ignored")
	})

	t.Run("json_and_text", func(t *testing.T) {
		for _, format := range []string{"json", "text"} {
			l, err := NewLogger(format, "debug")
			require.NoError(t, err)
			require.True(t, l.Core().Enabled(zapcore.DebugLevel))
		}
	})

	t.Run("unknown_level", func(t *testing.T) {
		_, err := NewLogger("json", "loud")
		require.ErrorContains(t, err, "unknown log level")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := NewLogger("xml", "info")
		require.ErrorContains(t, err, "unknown log format")
	})

	t.Run("must_panics", func(t *testing.T) {
		require.Panics(t, func() { MustNewLogger("json", "loud") })
	})
}
