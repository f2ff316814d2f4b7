package apigateway

import (
	"encoding/json"
	"net/http"

	"github.com/Pocket/global-utils/lib/logger"
	"github.com/Pocket/global-utils/lib/utils"
	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an API error
type ErrorResponse struct {
	HTTPCode int    `json:"http_code"`
	Message  string `json:"message"`
	Argument string `json:"argument,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// NewErrorResponse returns an error response, invalid argument errors carry
// which argument failed and what was expected of it
func NewErrorResponse(statusCode int, err error) *events.APIGatewayProxyResponse {
	response := ErrorResponse{
		HTTPCode: statusCode,
		Message:  err.Error(),
	}

	var argErr *utils.InvalidArgumentError
	if errors.As(err, &argErr) {
		response.Argument = argErr.Argument
		response.Expected = string(argErr.Expected)
	}

	return NewJSONResponse(statusCode, response)
}

// NewJSONResponse creates a new JSON response given a serializable val
func NewJSONResponse(statusCode int, val interface{}) *events.APIGatewayProxyResponse {
	data, err := json.Marshal(val)
	if err != nil {
		return LogAndReturnError(errors.Wrap(err, "error marshalling response"), logrus.Fields{})
	}

	return &events.APIGatewayProxyResponse{
		StatusCode:      statusCode,
		IsBase64Encoded: false,
		Body:            string(data),
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
	}
}

// LogAndReturnError logs the given error along with fields and terminates
// the response with a status 500 showing the error
func LogAndReturnError(err error, fields logrus.Fields) *events.APIGatewayProxyResponse {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["error"] = err.Error()
	logger.Log.WithFields(fields).Error(err)

	return NewErrorResponse(http.StatusInternalServerError, err)
}
