package listers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	awslib "awsls/internal/aws"
)

func newTestDynamoDBLister(m *mockDynamoDBAPI) *DynamoDBLister {
	return &DynamoDBLister{newClient: func(p client.ConfigProvider, region string) dynamodbiface.DynamoDBAPI {
		return m
	}}
}

func table(status string, items, size int64) *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{Table: &dynamodb.TableDescription{
		TableStatus:    aws.String(status),
		ItemCount:      aws.Int64(items),
		TableSizeBytes: aws.Int64(size),
	}}
}

func TestDynamoDBListerDescriptor(t *testing.T) {
	l := NewDynamoDBLister()
	assert.Equal(t, "dynamodb", l.ArgumentName())
	assert.Equal(t, "DynamoDB Tables", l.Label())
	assert.Equal(t, []string{"TableName", "Status", "ItemCount", "SizeBytes"}, l.Columns())
}

func TestDynamoDBListerList(t *testing.T) {
	m := &mockDynamoDBAPI{}
	m.On("ListTablesPagesWithContext", mock.Anything).Return([]*dynamodb.ListTablesOutput{
		{TableNames: aws.StringSlice([]string{"orders", "locked"}), LastEvaluatedTableName: aws.String("locked")},
		{TableNames: aws.StringSlice([]string{"users"})},
	}, nil)
	m.On("DescribeTableWithContext", "orders").Return(table("ACTIVE", 42, 2048), nil)
	m.On("DescribeTableWithContext", "locked").Return((*dynamodb.DescribeTableOutput)(nil), accessDenied())
	m.On("DescribeTableWithContext", "users").Return(table("UPDATING", 0, 0), nil)

	tracker := &recordingTracker{}
	opts := testOptions("eu-west-1")
	opts.Progress = tracker.progress()

	rows, err := newTestDynamoDBLister(m).List(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []awslib.Row{
		{"orders", "ACTIVE", "42", "2048"},
		{"locked", AccessDeniedStatus, "", ""},
		{"users", "UPDATING", "0", "0"},
	}, rows)
	assert.Equal(t, "Describing tables", tracker.description)
	assert.Equal(t, 3, tracker.total)
	assert.Equal(t, 3, tracker.increments)
	assert.True(t, tracker.done)
	m.AssertExpectations(t)
}

func TestDynamoDBListerNoTables(t *testing.T) {
	m := &mockDynamoDBAPI{}
	m.On("ListTablesPagesWithContext", mock.Anything).Return([]*dynamodb.ListTablesOutput{{}}, nil)

	rows, err := newTestDynamoDBLister(m).List(context.Background(), testOptions("eu-west-1"))
	require.NoError(t, err)
	assert.Empty(t, rows)
	m.AssertNotCalled(t, "DescribeTableWithContext", mock.Anything)
}

func TestDynamoDBListerMissingCounters(t *testing.T) {
	m := &mockDynamoDBAPI{}
	m.On("ListTablesPagesWithContext", mock.Anything).Return([]*dynamodb.ListTablesOutput{
		{TableNames: aws.StringSlice([]string{"creating"})},
	}, nil)
	m.On("DescribeTableWithContext", "creating").Return(&dynamodb.DescribeTableOutput{
		Table: &dynamodb.TableDescription{TableStatus: aws.String("CREATING")},
	}, nil)

	rows, err := newTestDynamoDBLister(m).List(context.Background(), testOptions("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, []awslib.Row{{"creating", "CREATING", "", ""}}, rows)
}

func TestDynamoDBListerDescribeConnectivityFailureAborts(t *testing.T) {
	m := &mockDynamoDBAPI{}
	m.On("ListTablesPagesWithContext", mock.Anything).Return([]*dynamodb.ListTablesOutput{
		{TableNames: aws.StringSlice([]string{"a", "b"})},
	}, nil)
	m.On("DescribeTableWithContext", "a").Return((*dynamodb.DescribeTableOutput)(nil), connectionFailure())

	_, err := newTestDynamoDBLister(m).List(context.Background(), testOptions("eu-west-1"))
	require.Error(t, err)
	assert.Equal(t, awslib.KindConnectivity, awslib.Classify(err, "eu-west-1").Kind)
	m.AssertNotCalled(t, "DescribeTableWithContext", "b")
}

func TestDynamoDBListerListTablesError(t *testing.T) {
	m := &mockDynamoDBAPI{}
	m.On("ListTablesPagesWithContext", mock.Anything).Return([]*dynamodb.ListTablesOutput{}, accessDenied())

	_, err := newTestDynamoDBLister(m).List(context.Background(), testOptions("eu-west-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list DynamoDB tables")
	assert.Equal(t, awslib.KindAPI, awslib.Classify(err, "eu-west-1").Kind)
}
