package logs

import (
	"fmt"
	"os"

	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// InitLog 初始化日志库 级别从配置中读取
func InitLog(appName string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	if config.Conf.Log.Level == "DEBUG" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

func Debug(format string, values ...any) {
	if len(values) == 0 {
		logger.Debug(format)
	} else {
		logger.Debug(fmt.Sprintf(format, values...))
	}
}

func Info(format string, values ...any) {
	if len(values) == 0 {
		logger.Info(format)
	} else {
		logger.Info(fmt.Sprintf(format, values...))
	}
}

func Warn(format string, values ...any) {
	if len(values) == 0 {
		logger.Warn(format)
	} else {
		logger.Warn(fmt.Sprintf(format, values...))
	}
}

func Error(format string, values ...any) {
	if len(values) == 0 {
		logger.Error(format)
	} else {
		logger.Error(fmt.Sprintf(format, values...))
	}
}

func Fatal(format string, values ...any) {
	if len(values) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatal(fmt.Sprintf(format, values...))
	}
}
