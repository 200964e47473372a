package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is satisfied by *dynamodb.Client.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Tables names the three DynamoDB tables. Empty names fall back to the
// environment and then to the defaults.
type Tables struct {
	Residents string
	Products  string
	Purchases string
}

func (t Tables) resolved() Tables {
	return Tables{
		Residents: tableName(t.Residents, "RESIDENTS_TABLE", defaultResidentsTableName),
		Products:  tableName(t.Products, "PRODUCTS_TABLE", defaultProductsTableName),
		Purchases: tableName(t.Purchases, "PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

// TableDefinitions returns the CreateTable requests for every table.
func TableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	t = t.resolved()
	idOnly := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}
	}

	purchases := idOnly(t.Purchases)
	purchases.AttributeDefinitions = append(purchases.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("resident_id"),
		AttributeType: types.ScalarAttributeTypeS,
	})
	purchases.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(purchasesResidentIDIndex),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("resident_id"), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []*dynamodb.CreateTableInput{idOnly(t.Residents), idOnly(t.Products), purchases}
}

// EnsureTables creates any missing table. Tables that already exist are left alone.
func EnsureTables(ctx context.Context, api TableCreator, t Tables) error {
	for _, in := range TableDefinitions(t) {
		_, err := api.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			slog.Info("dynamodb table created", "table", aws.ToString(in.TableName))
		case errors.As(err, &inUse):
			slog.Debug("dynamodb table exists", "table", aws.ToString(in.TableName))
		default:
			return err
		}
	}
	return nil
}
