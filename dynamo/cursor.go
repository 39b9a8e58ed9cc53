package dynamo

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// gsi1KeyAttributes are the attributes DynamoDB reports in LastEvaluatedKey
// for a GSI1 query.
var gsi1KeyAttributes = []string{"PK", "SK", "GSI1PK", "GSI1SK"}

// Cursors travel in query strings, so they use the URL safe alphabet.
func lastEvalKeyToCursor(lastEvalKey map[string]types.AttributeValue) (string, error) {
	bytesJSON, err := attributevalue.MarshalMapJSON(lastEvalKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode to JSON: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(bytesJSON), nil
}

func cursorToLastEval(cursor string) (map[string]types.AttributeValue, error) {
	bytesJSON, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to b64 decode: %w", err)
	}

	lastEval, err := attributevalue.UnmarshalMapJSON(bytesJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to json decode: %w", err)
	}

	for _, attr := range gsi1KeyAttributes {
		if _, ok := lastEval[attr]; !ok {
			return nil, fmt.Errorf("cursor is missing key attribute %q", attr)
		}
	}

	return lastEval, nil
}

func keyFromItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	result := make(map[string]types.AttributeValue, len(gsi1KeyAttributes))
	for _, k := range gsi1KeyAttributes {
		result[k] = item[k]
	}
	return result
}
