package repository

import (
	"context"
	"sort"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResidentsTableName = "residents"

type residentItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phase     string `dynamodbav:"phase"`
	Block     string `dynamodbav:"block"`
	Lot       string `dynamodbav:"lot"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ResidentDynamoRepository persists residents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The resident list is small, so filtering and ordering run over a scan.
type ResidentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IResidentRepository = (*ResidentDynamoRepository)(nil)

func NewResidentDynamoRepository(ddb DynamoAPI, table string) *ResidentDynamoRepository {
	return &ResidentDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "RESIDENTS_TABLE", defaultResidentsTableName),
	}
}

func (r *ResidentDynamoRepository) Create(ctx context.Context, res entities.Resident) (entities.Resident, error) {
	av, err := attributevalue.MarshalMap(toResidentItem(res))
	if err != nil {
		return entities.Resident{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Resident{}, err
	}
	return res, nil
}

func (r *ResidentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Resident, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.Resident{}, err
	}
	return decodeResident(item)
}

func (r *ResidentDynamoRepository) List(ctx context.Context, filter entities.ResidentFilter) ([]entities.Resident, error) {
	var filters []eqFilter
	for _, f := range []struct{ attr, value string }{
		{"phase", filter.Phase},
		{"block", filter.Block},
		{"lot", filter.Lot},
	} {
		if f.value != "" {
			filters = append(filters, eqFilter{attr: f.attr, value: &types.AttributeValueMemberS{Value: f.value}})
		}
	}

	items, err := scanAll(ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Resident, 0, len(items))
	for _, item := range items {
		res, err := decodeResident(item)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ResidentDynamoRepository) Update(ctx context.Context, res entities.Resident) (entities.Resident, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, res.ID,
		"SET #name = :name, #phase = :phase, #block = :block, #lot = :lot",
		map[string]types.AttributeValue{
			":name":  &types.AttributeValueMemberS{Value: res.Name},
			":phase": &types.AttributeValueMemberS{Value: res.Phase},
			":block": &types.AttributeValueMemberS{Value: res.Block},
			":lot":   &types.AttributeValueMemberS{Value: res.Lot},
		},
		map[string]string{
			"#name":  "name",
			"#phase": "phase",
			"#block": "block",
			"#lot":   "lot",
		},
	)
	if err != nil || attrs == nil {
		return entities.Resident{}, err
	}
	return decodeResident(attrs)
}

func (r *ResidentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func decodeResident(item map[string]types.AttributeValue) (entities.Resident, error) {
	var it residentItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Resident{}, err
	}
	return fromResidentItem(it), nil
}

func toResidentItem(r entities.Resident) residentItem {
	return residentItem{
		ID:        r.ID,
		Name:      r.Name,
		Phase:     r.Phase,
		Block:     r.Block,
		Lot:       r.Lot,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func fromResidentItem(it residentItem) entities.Resident {
	return entities.Resident{
		ID:        it.ID,
		Name:      it.Name,
		Phase:     it.Phase,
		Block:     it.Block,
		Lot:       it.Lot,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
