package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TestSetup_JSONFormat json格式输出应该包含service字段
func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{
		ServiceName: "bookpos-test",
		Level:       "info",
		Format:      "json",
		Output:      &buf,
	})

	log.Info().Str("key", "value").Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("输出不是合法JSON: %v", err)
	}
	if entry["service"] != "bookpos-test" {
		t.Errorf("期望service=bookpos-test,实际%v", entry["service"])
	}
	if entry["message"] != "hello" {
		t.Errorf("期望message=hello,实际%v", entry["message"])
	}
}

// TestSetup_LevelFiltering 低于配置级别的日志不输出
func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{
		ServiceName: "bookpos-test",
		Level:       "warn",
		Format:      "json",
		Output:      &buf,
	})

	log.Info().Msg("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("info日志不应输出,实际: %s", buf.String())
	}

	log.Warn().Msg("should appear")
	if buf.Len() == 0 {
		t.Error("warn日志应该输出")
	}
}

// TestParseLevel 非法级别回退到info
func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q)=%v,期望%v", tc.input, got, tc.want)
		}
	}
}
