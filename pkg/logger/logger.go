package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный экземпляр логгера для всего приложения.
// До вызова Init он молчит: игровые пакеты можно гонять в тестах
// без настройки окружения.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
	Log.SetOutput(io.Discard)
}

// Init настраивает глобальный логгер.
// Вызывается один раз при старте приложения в main.go.
func Init() {
	// Уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// Форматтер: "json" - для продакшена и сбора логов,
	// text - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
