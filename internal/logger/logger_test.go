package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	// Reinitialize logger with test output
	logger = nil
	InitLogger(level, format)

	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:  "info log",
			level: "info",
			logFn: func() {
				Info("detected host platform")
			},
			contains: []string{"detected host platform"},
		},
		{
			name:  "debug log with debug level",
			level: "debug",
			logFn: func() {
				Debug("classifying host identifiers")
			},
			contains: []string{"classifying host identifiers", "level=DEBUG"},
		},
		{
			name:  "debug log with info level",
			level: "info",
			logFn: func() {
				Debug("classifying host identifiers")
			},
			excludes: []string{"classifying host identifiers"},
		},
		{
			name:  "error log",
			level: "error",
			logFn: func() {
				Error("unsupported host")
			},
			contains: []string{"unsupported host", "level=ERROR"},
		},
		{
			name:  "warn log with fields",
			level: "warn",
			logFn: func() {
				Warn("falling back", Fields{"os": "linux", "attempts": 2})
			},
			contains: []string{"falling back", "level=WARN", "os=linux", "attempts=2"},
		},
		{
			name:  "success log",
			level: "info",
			logFn: func() {
				Success("platform detected")
			},
			contains: []string{"platform detected", "status=success"},
		},
		{
			name:  "formatted info log",
			level: "info",
			logFn: func() {
				Infof("host is %s", "linux/x86-64")
			},
			contains: []string{"host is linux/x86-64"},
		},
		{
			name:  "formatted debug with fields",
			level: "debug",
			logFn: func() {
				DebugfWithFields(Fields{"arch": "aarch64"}, "mapped identifier %q", "arm64")
			},
			contains: []string{`mapped identifier \"arm64\"`, "arch=aarch64"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want, "log output should contain expected message")
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, output, notWant, "log output should not contain excluded message")
			}
		})
	}
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
		lg.Info("test message")
	})
}

func TestSetOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger("debug", FormatText)
	Info("first message")
	output := buf.String()
	assert.Contains(t, output, "first message")
	assert.Contains(t, output, "INFO")

	buf.Reset()
	SetOutputFormat(FormatJSON)
	Info("second message")
	jsonOutput := buf.String()
	assert.Contains(t, jsonOutput, `"msg":"second message"`)
	assert.Contains(t, jsonOutput, `"level":"INFO"`)
}

func TestJSONFormat(t *testing.T) {
	output := captureOutput(t, "info", FormatJSON, func() {
		Info("host classified", Fields{
			"os":        "mac",
			"arch":      "aarch64",
			"supported": true,
		})
	})

	assert.Contains(t, output, `"msg":"host classified"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"os":"mac"`)
	assert.Contains(t, output, `"arch":"aarch64"`)
	assert.Contains(t, output, `"supported":true`)
}

func TestMergeFields(t *testing.T) {
	attrs := mergeFields(Fields{"os": "linux"}, Fields{"arch": "x86-64"})
	result := make(map[string]interface{})
	for i := 0; i < len(attrs); i += 2 {
		result[attrs[i].(string)] = attrs[i+1]
	}
	assert.Equal(t, map[string]interface{}{"os": "linux", "arch": "x86-64"}, result)
}
