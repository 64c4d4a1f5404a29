package logger

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ProvideLogger provides a zap logger
func ProvideLogger(debug bool) *zap.SugaredLogger {
	level := "info"
	if debug {
		level = "debug"
	}

	rawJSON := []byte(fmt.Sprintf(`{
	  "level": "%v",
	  "encoding": "json",
	  "outputPaths": ["stdout"],
	  "errorOutputPaths": ["stderr"],
	  "encoderConfig": {
	    "messageKey": "message",
	    "levelKey": "level",
	    "levelEncoder": "lowercase"
	  }
	}`, level))

	var cfg zap.Config
	if err := json.Unmarshal(rawJSON, &cfg); err != nil {
		panic(err)
	}
	logger := zap.Must(cfg.Build())

	return logger.Sugar()
}
