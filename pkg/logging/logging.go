package logging

import (
	"io"
	"strings"

	"github.com/go-kit/kit/log"
)

// New 依格式建立 go-kit Logger，並加上時間與呼叫位置
//
// 參數:
//
//	format: "json" 或 "logfmt" (其他值視為 logfmt)
//	w: 輸出位置，通常是 os.Stderr，報表才走 os.Stdout
func New(format string, w io.Writer) log.Logger {
	var logger log.Logger
	if strings.EqualFold(format, "json") {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)
	return logger
}
