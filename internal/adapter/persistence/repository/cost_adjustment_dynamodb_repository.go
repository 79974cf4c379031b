package repository

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCostAdjustmentsTableName = "cost_adjustments"

type costAdjustmentItem struct {
	ID                   string             `dynamodbav:"id"`
	QuoteID              string             `dynamodbav:"quote_id"`
	Component            string             `dynamodbav:"component,omitempty"`
	OriginalCost         float64            `dynamodbav:"original_cost"`
	AdjustedCost         float64            `dynamodbav:"adjusted_cost"`
	AdjustmentRatio      float64            `dynamodbav:"adjustment_ratio"`
	AdjustmentReason     string             `dynamodbav:"adjustment_reason"`
	ComponentAdjustments map[string]float64 `dynamodbav:"component_adjustments,omitempty"`
	ProjectSize          float64            `dynamodbav:"project_size"`
	Region               string             `dynamodbav:"region"`
	CreatedAt            string             `dynamodbav:"created_at"`
}

// CostAdjustmentDynamoRepository is append only: adjustments are an
// audit trail and are never read back individually by the API.
type CostAdjustmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostAdjustmentRepository = (*CostAdjustmentDynamoRepository)(nil)

func NewCostAdjustmentDynamoRepository(ddb *dynamodb.Client, tableName string) *CostAdjustmentDynamoRepository {
	if tableName == "" {
		tableName = defaultCostAdjustmentsTableName
	}
	return &CostAdjustmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CostAdjustmentDynamoRepository) Create(ctx context.Context, adj entities.CostAdjustment) (entities.CostAdjustment, error) {
	av, err := attributevalue.MarshalMap(toCostAdjustmentItem(adj))
	if err != nil {
		return entities.CostAdjustment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CostAdjustment{}, err
	}
	return adj, nil
}

func toCostAdjustmentItem(adj entities.CostAdjustment) costAdjustmentItem {
	return costAdjustmentItem{
		ID:                   adj.ID,
		QuoteID:              adj.QuoteID,
		Component:            adj.Component,
		OriginalCost:         adj.OriginalCost,
		AdjustedCost:         adj.AdjustedCost,
		AdjustmentRatio:      adj.AdjustmentRatio,
		AdjustmentReason:     adj.AdjustmentReason,
		ComponentAdjustments: adj.ComponentAdjustments,
		ProjectSize:          adj.ProjectSize,
		Region:               adj.Region,
		CreatedAt:            formatTime(adj.CreatedAt),
	}
}
