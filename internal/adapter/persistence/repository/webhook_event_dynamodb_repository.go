package repository

import (
	"context"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type webhookEventItem struct {
	ID              string `dynamodbav:"id"`
	Provider        string `dynamodbav:"provider"`
	ProviderEventID string `dynamodbav:"provider_event_id"`
	EventType       string `dynamodbav:"event_type"`
	SessionID       string `dynamodbav:"session_id,omitempty"`
	PayloadJSON     string `dynamodbav:"payload_json"`
	ProcessedAt     string `dynamodbav:"processed_at,omitempty"`
	ProcessingError string `dynamodbav:"processing_error,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// WebhookEventDynamoRepository keys events by "<provider>#<event id>" so the
// primary key itself enforces one row per delivery.
type WebhookEventDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb DynamoAPI, tables DynamoTables) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *WebhookEventDynamoRepository) RecordIfNotExists(ctx context.Context, e entities.WebhookEvent) (entities.WebhookEvent, bool, error) {
	e.ID = e.Provider + "#" + e.ProviderEventID
	av, err := attributevalue.MarshalMap(toWebhookEventItem(e))
	if err != nil {
		return entities.WebhookEvent{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.WebhookEvents),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err == nil {
		return e, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.WebhookEvent{}, false, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.WebhookEvents),
		Key:            idKey(e.ID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookEvent{}, false, err
	}
	var it webhookEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookEvent{}, false, err
	}
	return fromWebhookEventItem(it), false, nil
}

func (r *WebhookEventDynamoRepository) MarkProcessed(ctx context.Context, id string, processingError string) error {
	expr := "SET #processing_error = :err"
	vals := map[string]types.AttributeValue{
		":err": &types.AttributeValueMemberS{Value: processingError},
	}
	names := map[string]string{"#processing_error": "processing_error"}
	if processingError == "" {
		expr += ", #processed_at = :processed_at"
		vals[":processed_at"] = &types.AttributeValueMemberS{Value: formatTime(nowUTC())}
		names["#processed_at"] = "processed_at"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.WebhookEvents),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	return err
}

func toWebhookEventItem(e entities.WebhookEvent) webhookEventItem {
	return webhookEventItem{
		ID:              e.ID,
		Provider:        e.Provider,
		ProviderEventID: e.ProviderEventID,
		EventType:       e.EventType,
		SessionID:       e.SessionID,
		PayloadJSON:     e.PayloadJSON,
		ProcessedAt:     formatTimePtr(e.ProcessedAt),
		ProcessingError: e.ProcessingError,
		CreatedAt:       formatTime(e.CreatedAt),
	}
}

func fromWebhookEventItem(it webhookEventItem) entities.WebhookEvent {
	return entities.WebhookEvent{
		ID:              it.ID,
		Provider:        it.Provider,
		ProviderEventID: it.ProviderEventID,
		EventType:       it.EventType,
		SessionID:       it.SessionID,
		PayloadJSON:     it.PayloadJSON,
		ProcessedAt:     parseTimePtr(it.ProcessedAt),
		ProcessingError: it.ProcessingError,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
