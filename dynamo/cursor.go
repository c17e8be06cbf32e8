package dynamo

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func lastEvalKeyToCursor(lastEvalKey map[string]types.AttributeValue) (string, error) {
	bytesJSON, err := attributevalue.MarshalMapJSON(lastEvalKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode to JSON: %w", err)
	}

	return base64.StdEncoding.EncodeToString(bytesJSON), nil
}

func cursorToLastEval(cursor string) (map[string]types.AttributeValue, error) {
	bytesJSON, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to b64 decode: %w", err)
	}

	outputJSON, err := attributevalue.UnmarshalMapJSON(bytesJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to json decode: %w", err)
	}

	return outputJSON, nil
}

func getKeyFromItem(key map[string]types.AttributeValue, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	result := map[string]types.AttributeValue{}
	for k := range key {
		result[k] = item[k]
	}
	return result
}

type page[T any] struct {
	items       []T
	cursor      *string
	hasNextPage bool
}

// pageFromQuery unmarshals a query that asked for limit+1 items. The extra
// item only signals that another page exists and is dropped.
func pageFromQuery[T any](result *dynamodb.QueryOutput, limit int32) page[T] {
	var items []T
	err := attributevalue.UnmarshalListOfMaps(result.Items, &items)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo items: %s", err))
	}

	hasNextPage := len(items) > int(limit)

	var newCursor *string
	if hasNextPage && len(result.LastEvaluatedKey) > 0 {
		// LastEvaluatedKey points at the extra item, so rebuild the key from
		// the last item handed out.
		lastItemGivenToUser := result.Items[len(result.Items)-2]
		lastItemKey := getKeyFromItem(result.LastEvaluatedKey, lastItemGivenToUser)
		c, err := lastEvalKeyToCursor(lastItemKey)
		if err != nil {
			panic(fmt.Sprintf("failed to make cursor from lastEvalKey: %s", err))
		}
		newCursor = &c
	}

	return page[T]{
		items:       items[:min(int(limit), len(items))],
		cursor:      newCursor,
		hasNextPage: hasNextPage,
	}
}
