package listkeys

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/paymentcryptography/types"
)

// FailureMessage is the human-readable message of every failure envelope.
const FailureMessage = "Failed to list keys"

// listResponse is the success body.
type listResponse struct {
	Keys []types.KeySummary `json:"keys"`
}

// errorResponse is the failure body.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// successResponse wraps keys in a 200 envelope. A nil slice is reported as an
// empty list.
func successResponse(keys []types.KeySummary) (events.APIGatewayProxyResponse, error) {
	if keys == nil {
		keys = []types.KeySummary{}
	}

	body, err := json.Marshal(listResponse{Keys: keys})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}, nil
}

// failureResponse wraps err in a 500 envelope.
func failureResponse(err error) events.APIGatewayProxyResponse {
	detail := "unknown error"
	if err != nil && err.Error() != "" {
		detail = err.Error()
	}

	// Marshaling two strings cannot fail.
	body, _ := json.Marshal(errorResponse{
		Message: FailureMessage,
		Error:   detail,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}
}
