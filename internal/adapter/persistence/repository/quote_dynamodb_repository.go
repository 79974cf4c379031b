package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type costBreakdownItem struct {
	Component     string  `dynamodbav:"component"`
	EstimatedCost float64 `dynamodbav:"estimated_cost"`
	CostRangeMin  float64 `dynamodbav:"cost_range_min"`
	CostRangeMax  float64 `dynamodbav:"cost_range_max"`
	Notes         string  `dynamodbav:"notes"`
}

type quoteItem struct {
	ID              string              `dynamodbav:"id"`
	RequestID       string              `dynamodbav:"request_id"`
	TotalCost       float64             `dynamodbav:"total_cost"`
	CostBreakdown   []costBreakdownItem `dynamodbav:"cost_breakdown"`
	AIAnalysis      string              `dynamodbav:"ai_analysis"`
	ConfidenceLevel string              `dynamodbav:"confidence_level"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// UpdateTotalCost is a plain SET with no version condition: concurrent
// adjustments on the same quote are last-write-wins.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, limit int32) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateTotalCost(ctx context.Context, id string, newTotal float64) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #total_cost = :total_cost, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total_cost": &types.AttributeValueMemberN{Value: strconv.FormatFloat(newTotal, 'f', -1, 64)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#total_cost": "total_cost",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	breakdown := make([]costBreakdownItem, 0, len(q.CostBreakdown))
	for _, line := range q.CostBreakdown {
		breakdown = append(breakdown, costBreakdownItem{
			Component:     line.Component,
			EstimatedCost: line.EstimatedCost,
			CostRangeMin:  line.CostRangeMin,
			CostRangeMax:  line.CostRangeMax,
			Notes:         line.Notes,
		})
	}
	return quoteItem{
		ID:              q.ID,
		RequestID:       q.RequestID,
		TotalCost:       q.TotalCost,
		CostBreakdown:   breakdown,
		AIAnalysis:      q.AIAnalysis,
		ConfidenceLevel: string(q.ConfidenceLevel),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	breakdown := make([]entities.CostBreakdown, 0, len(it.CostBreakdown))
	for _, line := range it.CostBreakdown {
		breakdown = append(breakdown, entities.CostBreakdown{
			Component:     line.Component,
			EstimatedCost: line.EstimatedCost,
			CostRangeMin:  line.CostRangeMin,
			CostRangeMax:  line.CostRangeMax,
			Notes:         line.Notes,
		})
	}
	return entities.Quote{
		ID:              it.ID,
		RequestID:       it.RequestID,
		TotalCost:       it.TotalCost,
		CostBreakdown:   breakdown,
		AIAnalysis:      it.AIAnalysis,
		ConfidenceLevel: entities.ConfidenceLevel(it.ConfidenceLevel),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
