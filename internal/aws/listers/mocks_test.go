package listers

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/mock"

	awslib "awsls/internal/aws"
)

// Mock AWS services. Paginated calls take their pages from the first return value
// and feed them to the callback until it asks to stop.

type mockEC2API struct {
	mock.Mock
	ec2iface.EC2API
}

func (m *mockEC2API) DescribeInstancesPagesWithContext(ctx aws.Context, input *ec2.DescribeInstancesInput, fn func(*ec2.DescribeInstancesOutput, bool) bool, opts ...request.Option) error {
	args := m.Called(input)
	pages := args.Get(0).([]*ec2.DescribeInstancesOutput)
	for i, page := range pages {
		if !fn(page, i == len(pages)-1) {
			break
		}
	}
	return args.Error(1)
}

type mockS3API struct {
	mock.Mock
	s3iface.S3API
}

func (m *mockS3API) ListBucketsWithContext(ctx aws.Context, input *s3.ListBucketsInput, opts ...request.Option) (*s3.ListBucketsOutput, error) {
	args := m.Called(input)
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}

func (m *mockS3API) GetBucketLocationWithContext(ctx aws.Context, input *s3.GetBucketLocationInput, opts ...request.Option) (*s3.GetBucketLocationOutput, error) {
	args := m.Called(aws.StringValue(input.Bucket))
	return args.Get(0).(*s3.GetBucketLocationOutput), args.Error(1)
}

type mockDynamoDBAPI struct {
	mock.Mock
	dynamodbiface.DynamoDBAPI
}

func (m *mockDynamoDBAPI) ListTablesPagesWithContext(ctx aws.Context, input *dynamodb.ListTablesInput, fn func(*dynamodb.ListTablesOutput, bool) bool, opts ...request.Option) error {
	args := m.Called(input)
	pages := args.Get(0).([]*dynamodb.ListTablesOutput)
	for i, page := range pages {
		if !fn(page, i == len(pages)-1) {
			break
		}
	}
	return args.Error(1)
}

func (m *mockDynamoDBAPI) DescribeTableWithContext(ctx aws.Context, input *dynamodb.DescribeTableInput, opts ...request.Option) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(aws.StringValue(input.TableName))
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

type mockRDSAPI struct {
	mock.Mock
	rdsiface.RDSAPI
}

func (m *mockRDSAPI) DescribeDBInstancesPagesWithContext(ctx aws.Context, input *rds.DescribeDBInstancesInput, fn func(*rds.DescribeDBInstancesOutput, bool) bool, opts ...request.Option) error {
	args := m.Called(input)
	pages := args.Get(0).([]*rds.DescribeDBInstancesOutput)
	for i, page := range pages {
		if !fn(page, i == len(pages)-1) {
			break
		}
	}
	return args.Error(1)
}

type mockLambdaAPI struct {
	mock.Mock
	lambdaiface.LambdaAPI
}

func (m *mockLambdaAPI) ListFunctionsPagesWithContext(ctx aws.Context, input *lambda.ListFunctionsInput, fn func(*lambda.ListFunctionsOutput, bool) bool, opts ...request.Option) error {
	args := m.Called(input)
	pages := args.Get(0).([]*lambda.ListFunctionsOutput)
	for i, page := range pages {
		if !fn(page, i == len(pages)-1) {
			break
		}
	}
	return args.Error(1)
}

// accessDenied is what the service returns when the caller lacks a permission
func accessDenied() error {
	return awserr.NewRequestFailure(awserr.New("AccessDeniedException", "not authorized", nil), 403, "req-id")
}

// connectionFailure is what the SDK returns when the endpoint cannot be reached
func connectionFailure() error {
	return awserr.New(request.ErrCodeRequestError, "send request failed", nil)
}

// testOptions returns list options for region. The session is never used by the mocks.
func testOptions(region string) awslib.ListOptions {
	return awslib.ListOptions{Region: region}
}

// capturedClient records the region a lister built its client for
type capturedClient struct {
	region string
}

func (c *capturedClient) capture(p client.ConfigProvider, region string) {
	c.region = region
}

// recordingTracker counts progress updates
type recordingTracker struct {
	description string
	total       int
	increments  int
	done        bool
}

func (r *recordingTracker) Increment() { r.increments++ }
func (r *recordingTracker) Done()      { r.done = true }

func (r *recordingTracker) progress() awslib.ProgressFunc {
	return func(description string, total int) awslib.Tracker {
		r.description, r.total = description, total
		return r
	}
}
