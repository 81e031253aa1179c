// Package logger 基于zerolog的结构化日志
//
// 设计说明：
// 1. 结构化日志（JSON）便于采集和检索，开发环境可切换为console格式
// 2. 统一通过zerolog的全局Logger输出，业务代码直接使用log.Info()等
// 3. 日志级别、输出格式由配置文件控制
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志配置
type Options struct {
	ServiceName string // 服务名（附加到每条日志）
	Level       string // debug | info | warn | error
	Format      string // console | json
	Output      io.Writer
}

// Setup 初始化全局日志
func Setup(opts Options) {
	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}

	// console格式：人类可读，用于本地开发
	if opts.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.
		New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(ParseLevel(opts.Level))

	log.Logger = logger
}

// ParseLevel 解析日志级别（非法值回退到info）
func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
