package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSavedProjectsTableName = "saved_projects"

type savedProjectItem struct {
	ID          string           `dynamodbav:"id"`
	ProjectName string           `dynamodbav:"project_name"`
	Category    string           `dynamodbav:"category"`
	QuoteID     string           `dynamodbav:"quote_id"`
	ClientName  string           `dynamodbav:"client_name"`
	TotalCost   float64          `dynamodbav:"total_cost"`
	RequestData quoteRequestItem `dynamodbav:"request_data"`
	Notes       string           `dynamodbav:"notes,omitempty"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
}

// SavedProjectDynamoRepository persists SavedProject entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing and category extraction use Scan; the saved-project table is
// expected to stay small (hundreds of rows per tenant).

type SavedProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISavedProjectRepository = (*SavedProjectDynamoRepository)(nil)

func NewSavedProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *SavedProjectDynamoRepository {
	if tableName == "" {
		tableName = defaultSavedProjectsTableName
	}
	return &SavedProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SavedProjectDynamoRepository) Create(ctx context.Context, p entities.SavedProject) (entities.SavedProject, error) {
	av, err := attributevalue.MarshalMap(toSavedProjectItem(p))
	if err != nil {
		return entities.SavedProject{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SavedProject{}, err
	}
	return p, nil
}

func (r *SavedProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedProject, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedProject{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedProject{}, nil
	}

	var it savedProjectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedProject{}, err
	}
	return fromSavedProjectItem(it), nil
}

func (r *SavedProjectDynamoRepository) List(ctx context.Context, category string) ([]entities.SavedProject, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if category != "" {
		input.FilterExpression = aws.String("#category = :category")
		input.ExpressionAttributeNames = map[string]string{"#category": "category"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.SavedProject, 0, len(out.Items))
	for _, item := range out.Items {
		var it savedProjectItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromSavedProjectItem(it))
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
	return projects, nil
}

func (r *SavedProjectDynamoRepository) Update(ctx context.Context, id string, fields entities.SavedProjectUpdate) (entities.SavedProject, error) {
	expr := "SET #updated_at = :updated_at"
	names := map[string]string{"#id": "id", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
	}
	if fields.ProjectName != nil {
		expr += ", #project_name = :project_name"
		names["#project_name"] = "project_name"
		values[":project_name"] = &types.AttributeValueMemberS{Value: *fields.ProjectName}
	}
	if fields.Category != nil {
		expr += ", #category = :category"
		names["#category"] = "category"
		values[":category"] = &types.AttributeValueMemberS{Value: *fields.Category}
	}
	if fields.Notes != nil {
		expr += ", #notes = :notes"
		names["#notes"] = "notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: *fields.Notes}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SavedProject{}, nil
		}
		return entities.SavedProject{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SavedProject{}, nil
	}

	var it savedProjectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SavedProject{}, err
	}
	return fromSavedProjectItem(it), nil
}

func (r *SavedProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *SavedProjectDynamoRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#category"),
		ExpressionAttributeNames: map[string]string{"#category": "category"},
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, item := range out.Items {
		var row struct {
			Category string `dynamodbav:"category"`
		}
		if err := attributevalue.UnmarshalMap(item, &row); err != nil {
			return nil, err
		}
		if row.Category != "" {
			seen[row.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func toSavedProjectItem(p entities.SavedProject) savedProjectItem {
	return savedProjectItem{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Category:    p.Category,
		QuoteID:     p.QuoteID,
		ClientName:  p.ClientName,
		TotalCost:   p.TotalCost,
		RequestData: toQuoteRequestItem(p.RequestData),
		Notes:       p.Notes,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromSavedProjectItem(it savedProjectItem) entities.SavedProject {
	return entities.SavedProject{
		ID:          it.ID,
		ProjectName: it.ProjectName,
		Category:    it.Category,
		QuoteID:     it.QuoteID,
		ClientName:  it.ClientName,
		TotalCost:   it.TotalCost,
		RequestData: fromQuoteRequestItem(it.RequestData),
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
