package listers

import (
	"context"
	"fmt"

	awslib "awsls/internal/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// AccessDeniedStatus fills the Status column of a table that could not be described
const AccessDeniedStatus = "(access denied)"

// DynamoDBLister lists DynamoDB tables
type DynamoDBLister struct {
	newClient func(p client.ConfigProvider, region string) dynamodbiface.DynamoDBAPI
}

func init() {
	if err := awslib.DefaultRegistry.Register(NewDynamoDBLister()); err != nil {
		panic(fmt.Sprintf("Failed to register DynamoDB lister: %v", err))
	}
}

// NewDynamoDBLister creates a DynamoDBLister backed by the SDK client
func NewDynamoDBLister() *DynamoDBLister {
	return &DynamoDBLister{
		newClient: func(p client.ConfigProvider, region string) dynamodbiface.DynamoDBAPI {
			return dynamodb.New(p, aws.NewConfig().WithRegion(region))
		},
	}
}

// ArgumentName implements Lister interface
func (l *DynamoDBLister) ArgumentName() string {
	return "dynamodb"
}

// Label implements Lister interface
func (l *DynamoDBLister) Label() string {
	return "DynamoDB Tables"
}

// Columns implements Lister interface
func (l *DynamoDBLister) Columns() []string {
	return []string{"TableName", "Status", "ItemCount", "SizeBytes"}
}

// List implements Lister interface
func (l *DynamoDBLister) List(ctx context.Context, opts awslib.ListOptions) ([]awslib.Row, error) {
	svc := l.newClient(opts.Session, opts.Region)

	var tableNames []string
	err := svc.ListTablesPagesWithContext(ctx, &dynamodb.ListTablesInput{},
		func(page *dynamodb.ListTablesOutput, lastPage bool) bool {
			tableNames = append(tableNames, aws.StringValueSlice(page.TableNames)...)
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list DynamoDB tables: %w", err)
	}

	tracker := opts.Track("Describing tables", len(tableNames))
	defer tracker.Done()

	results := make([]awslib.ItemResult, 0, len(tableNames))
	for _, name := range tableNames {
		result, err := l.describeTable(ctx, svc, name)
		tracker.Increment()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return awslib.Rows(l.ArgumentName(), results), nil
}

// describeTable describes a single table. A describe call rejected by the API still
// lists the table, with an access denied marker and empty counters.
func (l *DynamoDBLister) describeTable(ctx context.Context, svc dynamodbiface.DynamoDBAPI, name string) (awslib.ItemResult, error) {
	out, err := svc.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		if awslib.IsAPIError(err) {
			return awslib.ItemResult{
				Name:   name,
				Status: awslib.ItemDenied,
				Row:    awslib.Row{name, AccessDeniedStatus, "", ""},
				Err:    err,
			}, nil
		}
		return awslib.ItemResult{}, fmt.Errorf("failed to describe table %s: %w", name, err)
	}

	table := out.Table
	if table == nil {
		table = &dynamodb.TableDescription{}
	}

	return awslib.ItemResult{
		Name:   name,
		Status: awslib.ItemListed,
		Row: awslib.Row{
			name,
			aws.StringValue(table.TableStatus),
			awslib.FormatInt64(table.ItemCount),
			awslib.FormatInt64(table.TableSizeBytes),
		},
	}, nil
}
