package base

import (
	"bytes"
	"encoding/json"

	"github.com/Pocket/global-utils/lib/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// UnknownRequestID is used when no request ID could be generated
const UnknownRequestID = "unknown"

// Payload is a single utility call, fields hold raw JSON values so argument
// validation happens in the utilities and not while decoding
type Payload struct {
	RequestID string `json:"requestID"`
	Operation string `json:"operation"`
	Items     any    `json:"items"`
	Other     any    `json:"other"`
	Text      any    `json:"text"`
	Length    any    `json:"length"`
	Size      any    `json:"size"`
	Min       any    `json:"min"`
	Max       any    `json:"max"`
}

type Response struct {
	Operation string `json:"operation"`
	Result    any    `json:"result"`
	Error     string `json:"error,omitempty"`
}

// DecodePayloads accepts either a single payload object or an array of them,
// batch reports which one was given
func DecodePayloads(data []byte) (payloads []Payload, batch bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, false, errors.New("empty payload")
	}

	if data[0] == '[' {
		if err := json.Unmarshal(data, &payloads); err != nil {
			return nil, true, errors.Wrap(err, "error decoding payload batch")
		}
		return payloads, true, nil
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, errors.Wrap(err, "error decoding payload")
	}
	return []Payload{payload}, false, nil
}

// NewRequestID returns a request ID from generate, falling back to
// UnknownRequestID when it fails
func NewRequestID(generate func(n int) (string, error)) string {
	requestID, err := generate(16)
	if err != nil {
		logger.Log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("apply utility: could not generate request ID")
		return UnknownRequestID
	}
	return requestID
}
