package repository

import (
	"context"
	"sort"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type applicationItem struct {
	ID            string `dynamodbav:"id"`
	GigID         string `dynamodbav:"gig_id"`
	ApplicantID   string `dynamodbav:"applicant_id"`
	CoverLetter   string `dynamodbav:"cover_letter"`
	ProposedRate  string `dynamodbav:"proposed_rate,omitempty"`
	Status        string `dynamodbav:"status"`
	EmployerNotes string `dynamodbav:"employer_notes"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// guardItem reserves a unique value. Its only payload is the id of the row
// that owns the value.
type guardItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`
}

// ApplicationDynamoRepository persists Application entities in DynamoDB.
//
// Uniqueness of (gig_id, applicant_id) is held by a guard item
// "pair#<gig>#<applicant>" written in the same transaction as the application.
type ApplicationDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb DynamoAPI, tables DynamoTables) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, a entities.Application) (entities.Application, error) {
	av, err := attributevalue.MarshalMap(toApplicationItem(a))
	if err != nil {
		return entities.Application{}, err
	}
	guard, err := attributevalue.MarshalMap(guardItem{ID: pairGuardID(a.GigID, a.ApplicantID), OwnerID: a.ID})
	if err != nil {
		return entities.Application{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tables.Applications), Item: guard, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tables.Applications), Item: av, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Application{}, interfaces.ErrDuplicateKey
		}
		return entities.Application{}, err
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Applications),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}
	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	if it.Status == "" {
		// guard item
		return entities.Application{}, nil
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) FindByGigAndApplicant(ctx context.Context, gigID, applicantID string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Applications),
		Key:            idKey(pairGuardID(gigID, applicantID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return entities.Application{}, err
	}
	return r.GetByID(ctx, g.OwnerID)
}

func (r *ApplicationDynamoRepository) ListByGig(ctx context.Context, gigID string) ([]entities.Application, error) {
	return r.queryIndex(ctx, applicationsGigIDIndex, "gig_id", gigID)
}

func (r *ApplicationDynamoRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	return r.queryIndex(ctx, applicationsApplicantIDIndex, "applicant_id", applicantID)
}

func (r *ApplicationDynamoRepository) CompareAndSetStatus(ctx context.Context, t entities.ApplicationTransition) (entities.Application, bool, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(t.To)},
		":from":       &types.AttributeValueMemberS{Value: string(t.From)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if t.EmployerNotes != nil {
		expr += ", #employer_notes = :notes"
		vals[":notes"] = &types.AttributeValueMemberS{Value: *t.EmployerNotes}
		names["#employer_notes"] = "employer_notes"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Applications),
		Key:                       idKey(t.ApplicationID),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, gerr := r.GetByID(ctx, t.ApplicationID)
			return current, false, gerr
		}
		return entities.Application{}, false, err
	}
	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Application{}, false, err
	}
	return fromApplicationItem(it), true, nil
}

func (r *ApplicationDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Application, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Applications),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	apps := make([]entities.Application, 0, len(raws))
	for _, raw := range raws {
		var it applicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		apps = append(apps, fromApplicationItem(it))
	}
	sort.SliceStable(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		}
		return apps[i].ID > apps[j].ID
	})
	return apps, nil
}

func pairGuardID(gigID, applicantID string) string {
	return pairGuardPrefix + gigID + "#" + applicantID
}

func toApplicationItem(a entities.Application) applicationItem {
	rate := ""
	if a.ProposedRate != nil {
		rate = a.ProposedRate.String()
	}
	return applicationItem{
		ID:            a.ID,
		GigID:         a.GigID,
		ApplicantID:   a.ApplicantID,
		CoverLetter:   a.CoverLetter,
		ProposedRate:  rate,
		Status:        string(a.Status),
		EmployerNotes: a.EmployerNotes,
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromApplicationItem(it applicationItem) entities.Application {
	var rate *decimal.Decimal
	if it.ProposedRate != "" {
		if d, err := decimal.NewFromString(it.ProposedRate); err == nil {
			rate = &d
		}
	}
	return entities.Application{
		ID:            it.ID,
		GigID:         it.GigID,
		ApplicantID:   it.ApplicantID,
		CoverLetter:   it.CoverLetter,
		ProposedRate:  rate,
		Status:        entities.ApplicationStatus(it.Status),
		EmployerNotes: it.EmployerNotes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
