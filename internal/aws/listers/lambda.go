package listers

import (
	"context"
	"fmt"

	awslib "awsls/internal/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
)

// LambdaLister lists Lambda functions
type LambdaLister struct {
	newClient func(p client.ConfigProvider, region string) lambdaiface.LambdaAPI
}

func init() {
	if err := awslib.DefaultRegistry.Register(NewLambdaLister()); err != nil {
		panic(fmt.Sprintf("Failed to register Lambda lister: %v", err))
	}
}

// NewLambdaLister creates a LambdaLister backed by the SDK client
func NewLambdaLister() *LambdaLister {
	return &LambdaLister{
		newClient: func(p client.ConfigProvider, region string) lambdaiface.LambdaAPI {
			return lambda.New(p, aws.NewConfig().WithRegion(region))
		},
	}
}

// ArgumentName implements Lister interface
func (l *LambdaLister) ArgumentName() string {
	return "lambda"
}

// Label implements Lister interface
func (l *LambdaLister) Label() string {
	return "Lambda Functions"
}

// Columns implements Lister interface
func (l *LambdaLister) Columns() []string {
	return []string{"FunctionName", "Runtime", "Version", "LastModified"}
}

// List implements Lister interface. LastModified is shown as returned by the service.
func (l *LambdaLister) List(ctx context.Context, opts awslib.ListOptions) ([]awslib.Row, error) {
	svc := l.newClient(opts.Session, opts.Region)

	var rows []awslib.Row
	err := svc.ListFunctionsPagesWithContext(ctx, &lambda.ListFunctionsInput{},
		func(page *lambda.ListFunctionsOutput, lastPage bool) bool {
			for _, fn := range page.Functions {
				rows = append(rows, awslib.Row{
					aws.StringValue(fn.FunctionName),
					aws.StringValue(fn.Runtime),
					aws.StringValue(fn.Version),
					aws.StringValue(fn.LastModified),
				})
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list Lambda functions: %w", err)
	}

	return rows, nil
}
