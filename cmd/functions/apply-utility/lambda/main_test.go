package main

import (
	"context"
	"net/http"
	"testing"

	base "github.com/Pocket/global-utils/cmd/functions/apply-utility"
	"github.com/stretchr/testify/require"
)

func TestLambdaHandler(t *testing.T) {
	c := require.New(t)

	response, err := lambdaHandler(context.Background(), base.Payload{
		Operation: "intersection",
		Items:     []any{1.0, 2.0, 3.0},
		Other:     []any{2.0, 3.0, 4.0},
	})
	c.NoError(err)
	c.Equal(http.StatusOK, response.StatusCode)
	c.JSONEq(`{"operation":"intersection","result":[2,3]}`, response.Body)
}

func TestLambdaHandlerInvalidArgument(t *testing.T) {
	c := require.New(t)

	response, err := lambdaHandler(context.Background(), base.Payload{
		Operation: "capitalize",
		Text:      42.0,
	})
	c.NoError(err)
	c.Equal(http.StatusBadRequest, response.StatusCode)
	c.Contains(response.Body, `"argument":"text"`)
	c.Contains(response.Body, `"expected":"text value"`)
}

func TestLambdaHandlerUnknownOperation(t *testing.T) {
	c := require.New(t)

	response, err := lambdaHandler(context.Background(), base.Payload{Operation: "explode"})
	c.NoError(err)
	c.Equal(http.StatusBadRequest, response.StatusCode)
	c.Contains(response.Body, "unknown operation")
}
