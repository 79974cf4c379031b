package repository

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteRequestsTableName = "quote_requests"

type clientInfoItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
	Address string `dynamodbav:"address"`
}

type roomMeasurementsItem struct {
	Length float64 `dynamodbav:"length"`
	Width  float64 `dynamodbav:"width"`
	Height float64 `dynamodbav:"height"`
}

type componentsItem struct {
	Demolition        bool `dynamodbav:"demolition"`
	Framing           bool `dynamodbav:"framing"`
	PlumbingRoughIn   bool `dynamodbav:"plumbing_rough_in"`
	ElectricalRoughIn bool `dynamodbav:"electrical_rough_in"`
	Plastering        bool `dynamodbav:"plastering"`
	Waterproofing     bool `dynamodbav:"waterproofing"`
	Tiling            bool `dynamodbav:"tiling"`
	FitOff            bool `dynamodbav:"fit_off"`
}

type quoteRequestItem struct {
	ID                 string                 `dynamodbav:"id"`
	ClientInfo         clientInfoItem         `dynamodbav:"client_info"`
	RoomMeasurements   roomMeasurementsItem   `dynamodbav:"room_measurements"`
	Components         componentsItem         `dynamodbav:"components"`
	DetailedComponents map[string]interface{} `dynamodbav:"detailed_components,omitempty"`
	TaskOptions        map[string]interface{} `dynamodbav:"task_options,omitempty"`
	AdditionalNotes    string                 `dynamodbav:"additional_notes,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
}

// QuoteRequestDynamoRepository persists RenovationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Requests are written once and never updated; the free-form
// detailed_components / task_options maps are stored as nested documents
// exactly as received.

type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteRequestDynamoRepository {
	if tableName == "" {
		tableName = defaultQuoteRequestsTableName
	}
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, req entities.RenovationRequest) (entities.RenovationRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(req))
	if err != nil {
		return entities.RenovationRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	return req, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RenovationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RenovationRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RenovationRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func toQuoteRequestItem(req entities.RenovationRequest) quoteRequestItem {
	return quoteRequestItem{
		ID: req.ID,
		ClientInfo: clientInfoItem{
			Name:    req.ClientInfo.Name,
			Email:   req.ClientInfo.Email,
			Phone:   req.ClientInfo.Phone,
			Address: req.ClientInfo.Address,
		},
		RoomMeasurements: roomMeasurementsItem{
			Length: req.RoomMeasurements.Length,
			Width:  req.RoomMeasurements.Width,
			Height: req.RoomMeasurements.Height,
		},
		Components: componentsItem{
			Demolition:        req.Components.Demolition,
			Framing:           req.Components.Framing,
			PlumbingRoughIn:   req.Components.PlumbingRoughIn,
			ElectricalRoughIn: req.Components.ElectricalRoughIn,
			Plastering:        req.Components.Plastering,
			Waterproofing:     req.Components.Waterproofing,
			Tiling:            req.Components.Tiling,
			FitOff:            req.Components.FitOff,
		},
		DetailedComponents: req.DetailedComponents,
		TaskOptions:        req.TaskOptions,
		AdditionalNotes:    req.AdditionalNotes,
		CreatedAt:          formatTime(req.CreatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.RenovationRequest {
	return entities.RenovationRequest{
		ID: it.ID,
		ClientInfo: entities.ClientInfo{
			Name:    it.ClientInfo.Name,
			Email:   it.ClientInfo.Email,
			Phone:   it.ClientInfo.Phone,
			Address: it.ClientInfo.Address,
		},
		RoomMeasurements: entities.RoomMeasurements{
			Length: it.RoomMeasurements.Length,
			Width:  it.RoomMeasurements.Width,
			Height: it.RoomMeasurements.Height,
		},
		Components: entities.RenovationComponents{
			Demolition:        it.Components.Demolition,
			Framing:           it.Components.Framing,
			PlumbingRoughIn:   it.Components.PlumbingRoughIn,
			ElectricalRoughIn: it.Components.ElectricalRoughIn,
			Plastering:        it.Components.Plastering,
			Waterproofing:     it.Components.Waterproofing,
			Tiling:            it.Components.Tiling,
			FitOff:            it.Components.FitOff,
		},
		DetailedComponents: it.DetailedComponents,
		TaskOptions:        it.TaskOptions,
		AdditionalNotes:    it.AdditionalNotes,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
