package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	base "github.com/Pocket/global-utils/cmd/functions/apply-utility"
	"github.com/Pocket/global-utils/common/environment"
	"github.com/Pocket/global-utils/lib/utils"
	"github.com/pkg/errors"

	logger "github.com/Pocket/global-utils/lib/logger"
	log "github.com/sirupsen/logrus"
)

var (
	timeout          = environment.GetSeconds("TIMEOUT", 30)
	batchConcurrency = int(environment.GetInt64("BATCH_CONCURRENCY", 8))
	payloadInput     = environment.GetString("PAYLOAD", "")
)

func readInput() ([]byte, error) {
	if payloadInput != "" {
		return []byte(payloadInput), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "error reading stdin")
	}
	return data, nil
}

func run(ctx context.Context, requestID string) (int, error) {
	data, err := readInput()
	if err != nil {
		return 0, err
	}

	payloads, batch, err := base.DecodePayloads(data)
	if err != nil {
		return 0, err
	}
	for idx := range payloads {
		if payloads[idx].RequestID == "" {
			payloads[idx].RequestID = requestID
		}
	}

	responses, err := base.ApplyBatch(ctx, payloads, batchConcurrency)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, response := range responses {
		if response.Error != "" {
			failed++
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	if batch {
		return failed, encoder.Encode(responses)
	}
	return failed, encoder.Encode(responses[0])
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	requestID := base.NewRequestID(utils.RandomHex)
	failed, err := run(ctx, requestID)
	if err != nil {
		logger.Log.WithFields(log.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("ERROR APPLYING UTILITIES: " + err.Error())
		cancel()
		os.Exit(1)
	}
	logger.Log.WithFields(log.Fields{
		"requestID":      requestID,
		"failedPayloads": failed,
	}).Info("APPLY UTILITY RESULT")
}
