package transport

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

const censored = "$censored"

var sensitiveFields = []string{"password"}

// censorBody masks sensitive fields of a json object. Anything that is not a
// json object is returned as is.
func censorBody(body []byte) []byte {
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err != nil {
		return body
	}

	changed := false
	for _, f := range sensitiveFields {
		if _, ok := obj[f]; ok {
			obj[f] = censored
			changed = true
		}
	}
	if !changed {
		return body
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return body
	}
	return out
}

func (s *HTTPServer) dumpBody(c echo.Context, reqBody, resBody []byte) {
	s.logger.Debugw("body dump",
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"request", string(censorBody(reqBody)),
		"response", string(resBody),
	)
}
