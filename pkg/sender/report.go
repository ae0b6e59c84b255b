package sender

import (
	"errors"

	"github.com/bft-labs/chatpost/pkg/log"
)

// Report logs the outcome of a send: the body on success, the error on
// failure. It never panics and never exits.
func Report(logger log.Logger, resp *Response, err error) {
	if err != nil {
		fields := []log.Field{log.Err(err)}
		var se *SendError
		if errors.As(err, &se) {
			fields = append(fields, log.String("op", string(se.Op)), log.String("url", se.URL))
			if se.StatusCode != 0 {
				fields = append(fields, log.Int("status_code", se.StatusCode))
			}
		}
		logger.Error("send failed", fields...)
		return
	}
	if resp == nil {
		logger.Warn("send returned no response")
		return
	}
	logger.Info("response",
		log.Int("status_code", resp.StatusCode),
		log.RawJSON("body", resp.Body))
}
