package main

import (
	"context"
	"net/http"

	"github.com/Pocket/global-utils/common/apigateway"
	"github.com/Pocket/global-utils/lib/utils"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"

	base "github.com/Pocket/global-utils/cmd/functions/apply-utility"
	logger "github.com/Pocket/global-utils/lib/logger"
	log "github.com/sirupsen/logrus"
)

// lambdaHandler applies a single payload, argument errors are the caller's
// fault and answered with a 400 without failing the invocation
func lambdaHandler(ctx context.Context, payload base.Payload) (events.APIGatewayProxyResponse, error) {
	if payload.RequestID == "" {
		payload.RequestID = base.NewRequestID(utils.RandomHex)
	}

	result, err := base.Apply(utils.DefaultSource, &payload)
	if errors.Is(err, utils.ErrInvalidArgument) || errors.Is(err, base.ErrUnknownOperation) {
		logger.Log.WithFields(log.Fields{
			"requestID": payload.RequestID,
			"operation": payload.Operation,
			"error":     err.Error(),
		}).Warn("apply utility: invalid payload")
		return *apigateway.NewErrorResponse(http.StatusBadRequest, err), nil
	}
	if err != nil {
		return *apigateway.LogAndReturnError(err, log.Fields{
			"requestID": payload.RequestID,
			"operation": payload.Operation,
		}), err
	}

	return *apigateway.NewJSONResponse(http.StatusOK, base.Response{
		Operation: payload.Operation,
		Result:    result,
	}), nil
}

func main() {
	lambda.Start(lambdaHandler)
}
