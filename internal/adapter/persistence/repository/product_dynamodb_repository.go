package repository

import (
	"context"
	"sort"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Color     string  `dynamodbav:"color"`
	Amount    float64 `dynamodbav:"amount"`
	Active    bool    `dynamodbav:"active"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists sticker products in DynamoDB (PK: id).
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, table string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.Product{}, err
	}
	return decodeProduct(item)
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.list(ctx)
}

func (r *ProductDynamoRepository) ListActive(ctx context.Context) ([]entities.Product, error) {
	return r.list(ctx, eqFilter{attr: "active", value: &types.AttributeValueMemberBOOL{Value: true}})
}

func (r *ProductDynamoRepository) list(ctx context.Context, filters ...eqFilter) ([]entities.Product, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, item := range items {
		p, err := decodeProduct(item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	amount, err := attributevalue.Marshal(p.Amount)
	if err != nil {
		return entities.Product{}, err
	}
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, p.ID,
		"SET #name = :name, #color = :color, #amount = :amount, #active = :active",
		map[string]types.AttributeValue{
			":name":   &types.AttributeValueMemberS{Value: string(p.Name)},
			":color":  &types.AttributeValueMemberS{Value: string(p.Color)},
			":amount": amount,
			":active": &types.AttributeValueMemberBOOL{Value: p.Active},
		},
		map[string]string{
			"#name":   "name",
			"#color":  "color",
			"#amount": "amount",
			"#active": "active",
		},
	)
	if err != nil || attrs == nil {
		return entities.Product{}, err
	}
	return decodeProduct(attrs)
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func decodeProduct(item map[string]types.AttributeValue) (entities.Product, error) {
	var it productItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:        p.ID,
		Name:      string(p.Name),
		Color:     string(p.Color),
		Amount:    p.Amount,
		Active:    p.Active,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:        it.ID,
		Name:      entities.StickerName(it.Name),
		Color:     entities.StickerColor(it.Color),
		Amount:    it.Amount,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
