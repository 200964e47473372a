package repository

import (
	"context"
	"sort"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "purchases"
	purchasesResidentIDIndex  = "resident_id-index"
)

type purchaseItem struct {
	ID               string  `dynamodbav:"id"`
	ResidentID       string  `dynamodbav:"resident_id"`
	ProductID        string  `dynamodbav:"product_id"`
	AmountPaid       float64 `dynamodbav:"amount_paid"`
	DriverName       string  `dynamodbav:"driver_name"`
	DriverLicense    *string `dynamodbav:"driver_license,omitempty"`
	Company          *string `dynamodbav:"company,omitempty"`
	ContactNumber    *string `dynamodbav:"contact_number,omitempty"`
	StickerNumber    string  `dynamodbav:"sticker_number"`
	PlateNumber      string  `dynamodbav:"plate_number"`
	AFNumber         string  `dynamodbav:"af_number"`
	Penalty          bool    `dynamodbav:"penalty"`
	Type             string  `dynamodbav:"type"`
	PaymentMethod    string  `dynamodbav:"payment_method,omitempty"`
	PaymentReference string  `dynamodbav:"payment_reference,omitempty"`
	PurchaseDate     string  `dynamodbav:"purchase_date"`
}

// PurchaseDynamoRepository persists purchases in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: resident_id-index (PK resident_id)
//
// Detailed reads join products and residents with BatchGetItem.
type PurchaseDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	productsTable  string
	residentsTable string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb DynamoAPI, purchasesTable, productsTable, residentsTable string) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:            ddb,
		tableName:      tableName(purchasesTable, "PURCHASES_TABLE", defaultPurchasesTableName),
		productsTable:  tableName(productsTable, "PRODUCTS_TABLE", defaultProductsTableName),
		residentsTable: tableName(residentsTable, "RESIDENTS_TABLE", defaultResidentsTableName),
	}
}

func (r *PurchaseDynamoRepository) Create(ctx context.Context, p entities.Purchase) (entities.Purchase, error) {
	av, err := attributevalue.MarshalMap(toPurchaseItem(p))
	if err != nil {
		return entities.Purchase{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) ListDetailed(ctx context.Context) ([]entities.PurchaseDetail, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return r.detailed(ctx, items)
}

func (r *PurchaseDynamoRepository) ListDetailedByResident(ctx context.Context, residentID string) ([]entities.PurchaseDetail, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesResidentIDIndex),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: residentID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return r.detailed(ctx, items)
}

func (r *PurchaseDynamoRepository) detailed(ctx context.Context, items []map[string]types.AttributeValue) ([]entities.PurchaseDetail, error) {
	purchases := make([]entities.Purchase, 0, len(items))
	productIDs := make([]string, 0, len(items))
	residentIDs := make([]string, 0, len(items))
	seenProduct := map[string]bool{}
	seenResident := map[string]bool{}

	for _, item := range items {
		var it purchaseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		p := fromPurchaseItem(it)
		purchases = append(purchases, p)
		if p.ProductID != "" && !seenProduct[p.ProductID] {
			seenProduct[p.ProductID] = true
			productIDs = append(productIDs, p.ProductID)
		}
		if p.ResidentID != "" && !seenResident[p.ResidentID] {
			seenResident[p.ResidentID] = true
			residentIDs = append(residentIDs, p.ResidentID)
		}
	}

	productRows, err := batchGet(ctx, r.ddb, r.productsTable, productIDs)
	if err != nil {
		return nil, err
	}
	residentRows, err := batchGet(ctx, r.ddb, r.residentsTable, residentIDs)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*entities.Product, len(productRows))
	for id, row := range productRows {
		prod, err := decodeProduct(row)
		if err != nil {
			return nil, err
		}
		products[id] = &prod
	}
	residents := make(map[string]*entities.Resident, len(residentRows))
	for id, row := range residentRows {
		res, err := decodeResident(row)
		if err != nil {
			return nil, err
		}
		residents[id] = &res
	}

	out := make([]entities.PurchaseDetail, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, entities.PurchaseDetail{
			Purchase: p,
			Product:  products[p.ProductID],
			Resident: residents[p.ResidentID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PurchaseDate.After(out[j].PurchaseDate)
	})
	return out, nil
}

func toPurchaseItem(p entities.Purchase) purchaseItem {
	return purchaseItem{
		ID:               p.ID,
		ResidentID:       p.ResidentID,
		ProductID:        p.ProductID,
		AmountPaid:       p.AmountPaid,
		DriverName:       p.DriverName,
		DriverLicense:    p.DriverLicense,
		Company:          p.Company,
		ContactNumber:    p.ContactNumber,
		StickerNumber:    p.StickerNumber,
		PlateNumber:      p.PlateNumber,
		AFNumber:         p.AFNumber,
		Penalty:          p.Penalty,
		Type:             string(p.Type),
		PaymentMethod:    string(p.PaymentMethod),
		PaymentReference: p.PaymentReference,
		PurchaseDate:     formatTime(p.PurchaseDate),
	}
}

func fromPurchaseItem(it purchaseItem) entities.Purchase {
	return entities.Purchase{
		ID:               it.ID,
		ResidentID:       it.ResidentID,
		ProductID:        it.ProductID,
		AmountPaid:       it.AmountPaid,
		DriverName:       it.DriverName,
		DriverLicense:    it.DriverLicense,
		Company:          it.Company,
		ContactNumber:    it.ContactNumber,
		StickerNumber:    it.StickerNumber,
		PlateNumber:      it.PlateNumber,
		AFNumber:         it.AFNumber,
		Penalty:          it.Penalty,
		Type:             entities.PurchaseType(it.Type),
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		PaymentReference: it.PaymentReference,
		PurchaseDate:     parseTime(it.PurchaseDate),
	}
}
