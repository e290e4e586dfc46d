package scopedpath_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := scopedpath.NewLogger(&buf, zerolog.InfoLevel)

	logger.Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected log output to contain 'test message', got: %s", output)
	}

	if !strings.HasSuffix(strings.TrimSpace(output), "lib=scopedpath") {
		t.Errorf("Expected log output to end with 'lib=scopedpath', got: %s", output)
	}
}

func TestLogLevelFromString(t *testing.T) {
	testCases := []struct {
		levelStr string
		expected zerolog.Level
		wantErr  bool
	}{
		{"trace", zerolog.TraceLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"invalid", zerolog.NoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.levelStr, func(t *testing.T) {
			level, err := scopedpath.LogLevelFromString(tc.levelStr)

			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for invalid level %q", tc.levelStr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if level != tc.expected {
				t.Errorf("Expected level %v, got %v", tc.expected, level)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := *scopedpath.Logger()
	defer scopedpath.SetLogger(prev)

	scopedpath.SetLogger(scopedpath.NewTestLogger(&buf, 1))
	scopedpath.Logger().Info().Msg("through the package logger")

	if !strings.Contains(buf.String(), "through the package logger") {
		t.Errorf("Expected replaced logger to receive output, got: %q", buf.String())
	}
}

func TestNewTestLogger(t *testing.T) {
	testCases := []struct {
		verbose  int
		expected zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		logger := scopedpath.NewTestLogger(&buf, tc.verbose)
		if logger.GetLevel() != tc.expected {
			t.Errorf("Expected level %v for verbose %d, got %v", tc.expected, tc.verbose, logger.GetLevel())
		}
	}
}
