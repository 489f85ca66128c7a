package repository

import (
	"context"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// gigItem stores the featured projection as a counter of completed
// featured_gig payments; the gig is featured while it is positive.
type gigItem struct {
	ID               string `dynamodbav:"id"`
	Title            string `dynamodbav:"title"`
	Description      string `dynamodbav:"description"`
	EmployerID       string `dynamodbav:"employer_id"`
	Budget           string `dynamodbav:"budget"`
	Location         string `dynamodbav:"location"`
	Category         string `dynamodbav:"category"`
	Deadline         string `dynamodbav:"deadline,omitempty"`
	IsActive         bool   `dynamodbav:"is_active"`
	FeaturedPayments int    `dynamodbav:"featured_payments"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// GigDynamoRepository persists Gig entities in DynamoDB.
type GigDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IGigRepository = (*GigDynamoRepository)(nil)

func NewGigDynamoRepository(ddb DynamoAPI, tables DynamoTables) *GigDynamoRepository {
	return &GigDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *GigDynamoRepository) Create(ctx context.Context, g entities.Gig) (entities.Gig, error) {
	av, err := attributevalue.MarshalMap(toGigItem(g))
	if err != nil {
		return entities.Gig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Gigs),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Gig{}, interfaces.ErrDuplicateKey
		}
		return entities.Gig{}, err
	}
	return g, nil
}

func (r *GigDynamoRepository) GetByID(ctx context.Context, id string) (entities.Gig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Gigs),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Gig{}, err
	}
	if len(out.Item) == 0 {
		return entities.Gig{}, nil
	}

	var it gigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Gig{}, err
	}
	return fromGigItem(it), nil
}

func (r *GigDynamoRepository) Update(ctx context.Context, g entities.Gig) (entities.Gig, error) {
	return r.update(ctx, g.ID, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #title = :title, #description = :description, #budget = :budget, #location = :location, #category = :category, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":title":       &types.AttributeValueMemberS{Value: g.Title},
			":description": &types.AttributeValueMemberS{Value: g.Description},
			":budget":      &types.AttributeValueMemberS{Value: g.Budget.String()},
			":location":    &types.AttributeValueMemberS{Value: g.Location},
			":category":    &types.AttributeValueMemberS{Value: string(g.Category)},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(g.UpdatedAt)},
		}
		names := map[string]string{
			"#title":       "title",
			"#description": "description",
			"#budget":      "budget",
			"#location":    "location",
			"#category":    "category",
			"#updated_at":  "updated_at",
			"#deadline":    "deadline",
		}
		if g.Deadline != nil {
			expr += ", #deadline = :deadline"
			vals[":deadline"] = &types.AttributeValueMemberS{Value: formatTimePtr(g.Deadline)}
		} else {
			expr += " REMOVE #deadline"
		}
		return expr, vals, names
	})
}

func (r *GigDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Gig, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_active = :is_active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		}
		names := map[string]string{
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// Delete clears payment gig references, removes applications with their pair
// guards, releases the pending featuring slot and finally removes the gig.
// The writes go through TransactWriteItems in chunks of transactMaxItems with
// the gig delete in the last chunk, so a gig with few dependents is deleted
// atomically and a failed chunk leaves the gig in place for a retry. Every
// write is idempotent, so a retried delete finishes a partial one.
func (r *GigDynamoRepository) Delete(ctx context.Context, id string) error {
	payments, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Payments),
		IndexName:              aws.String(paymentsGigIDIndex),
		KeyConditionExpression: aws.String("gig_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return err
	}
	apps, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Applications),
		IndexName:              aws.String(applicationsGigIDIndex),
		KeyConditionExpression: aws.String("gig_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return err
	}

	writes := make([]types.TransactWriteItem, 0, len(payments)+2*len(apps)+2)
	for _, raw := range payments {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName:                aws.String(r.tables.Payments),
			Key:                      idKey(it.ID),
			UpdateExpression:         aws.String("REMOVE #gig_id"),
			ExpressionAttributeNames: map[string]string{"#gig_id": "gig_id"},
		}})
	}
	for _, raw := range apps {
		var it applicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		writes = append(writes,
			types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tables.Applications), Key: idKey(it.ID)}},
			types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tables.Applications), Key: idKey(pairGuardID(it.GigID, it.ApplicantID))}},
		)
	}
	writes = append(writes,
		types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tables.Payments), Key: idKey(pendingGuardID(id))}},
		types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tables.Gigs), Key: idKey(id)}},
	)

	for len(writes) > 0 {
		n := min(len(writes), transactMaxItems)
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes[:n]}); err != nil {
			return err
		}
		writes = writes[n:]
	}
	return nil
}

// List scans the table and orders in memory: DynamoDB has no secondary order
// over (is_featured, created_at, id).
func (r *GigDynamoRepository) List(ctx context.Context, filter interfaces.GigFilter) ([]entities.Gig, int64, error) {
	gigs, err := r.scan(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	entities.SortForListing(gigs)

	total := int64(len(gigs))
	start := filter.Offset
	if start > len(gigs) {
		start = len(gigs)
	}
	end := len(gigs)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return gigs[start:end], total, nil
}

func (r *GigDynamoRepository) CountFeaturedActive(ctx context.Context) (int64, error) {
	gigs, err := r.scan(ctx, interfaces.GigFilter{})
	if err != nil {
		return 0, err
	}
	var n int64
	for _, g := range gigs {
		if g.IsFeatured {
			n++
		}
	}
	return n, nil
}

func (r *GigDynamoRepository) scan(ctx context.Context, filter interfaces.GigFilter) ([]entities.Gig, error) {
	var conds []string
	vals := map[string]types.AttributeValue{}
	names := map[string]string{}
	if !filter.IncludeInactive {
		conds = append(conds, "#is_active = :active")
		vals[":active"] = &types.AttributeValueMemberBOOL{Value: true}
		names["#is_active"] = "is_active"
	}
	if filter.Category != "" {
		conds = append(conds, "#category = :category")
		vals[":category"] = &types.AttributeValueMemberS{Value: string(filter.Category)}
		names["#category"] = "category"
	}
	if filter.EmployerID != "" {
		conds = append(conds, "#employer_id = :employer")
		vals[":employer"] = &types.AttributeValueMemberS{Value: filter.EmployerID}
		names["#employer_id"] = "employer_id"
	}

	in := &dynamodb.ScanInput{TableName: aws.String(r.tables.Gigs)}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(joinAnd(conds))
		in.ExpressionAttributeValues = vals
		in.ExpressionAttributeNames = names
	}
	raws, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	gigs := make([]entities.Gig, 0, len(raws))
	for _, raw := range raws {
		var it gigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		gigs = append(gigs, fromGigItem(it))
	}
	return gigs, nil
}

func (r *GigDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Gig, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Gigs),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Gig{}, nil
		}
		return entities.Gig{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Gig{}, nil
	}
	var it gigItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Gig{}, err
	}
	return fromGigItem(it), nil
}

func toGigItem(g entities.Gig) gigItem {
	featured := 0
	if g.IsFeatured {
		featured = 1
	}
	return gigItem{
		ID:               g.ID,
		Title:            g.Title,
		Description:      g.Description,
		EmployerID:       g.EmployerID,
		Budget:           g.Budget.String(),
		Location:         g.Location,
		Category:         string(g.Category),
		Deadline:         formatTimePtr(g.Deadline),
		IsActive:         g.IsActive,
		FeaturedPayments: featured,
		CreatedAt:        formatTime(g.CreatedAt),
		UpdatedAt:        formatTime(g.UpdatedAt),
	}
}

func fromGigItem(it gigItem) entities.Gig {
	budget, _ := decimal.NewFromString(it.Budget)
	return entities.Gig{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		EmployerID:  it.EmployerID,
		Budget:      budget,
		Location:    it.Location,
		Category:    entities.GigCategory(it.Category),
		Deadline:    parseTimePtr(it.Deadline),
		IsActive:    it.IsActive,
		IsFeatured:  it.FeaturedPayments > 0,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func scanAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func joinAnd(conds []string) string {
	out := conds[0]
	for _, c := range conds[1:] {
		out += " AND " + c
	}
	return out
}
