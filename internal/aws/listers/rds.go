package listers

import (
	"context"
	"fmt"

	awslib "awsls/internal/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
)

// RDSLister lists RDS DB instances
type RDSLister struct {
	newClient func(p client.ConfigProvider, region string) rdsiface.RDSAPI
}

func init() {
	if err := awslib.DefaultRegistry.Register(NewRDSLister()); err != nil {
		panic(fmt.Sprintf("Failed to register RDS lister: %v", err))
	}
}

// NewRDSLister creates an RDSLister backed by the SDK client
func NewRDSLister() *RDSLister {
	return &RDSLister{
		newClient: func(p client.ConfigProvider, region string) rdsiface.RDSAPI {
			return rds.New(p, aws.NewConfig().WithRegion(region))
		},
	}
}

// ArgumentName implements Lister interface
func (l *RDSLister) ArgumentName() string {
	return "rds"
}

// Label implements Lister interface
func (l *RDSLister) Label() string {
	return "RDS DB Instances"
}

// Columns implements Lister interface
func (l *RDSLister) Columns() []string {
	return []string{"Identifier", "Engine", "Class", "Status", "Endpoint", "Created"}
}

// List implements Lister interface
func (l *RDSLister) List(ctx context.Context, opts awslib.ListOptions) ([]awslib.Row, error) {
	svc := l.newClient(opts.Session, opts.Region)

	var rows []awslib.Row
	err := svc.DescribeDBInstancesPagesWithContext(ctx, &rds.DescribeDBInstancesInput{},
		func(page *rds.DescribeDBInstancesOutput, lastPage bool) bool {
			for _, instance := range page.DBInstances {
				var endpoint string
				// Instances that are still being created have no endpoint yet
				if instance.Endpoint != nil {
					endpoint = aws.StringValue(instance.Endpoint.Address)
				}
				rows = append(rows, awslib.Row{
					aws.StringValue(instance.DBInstanceIdentifier),
					aws.StringValue(instance.Engine),
					aws.StringValue(instance.DBInstanceClass),
					aws.StringValue(instance.DBInstanceStatus),
					endpoint,
					awslib.FormatTime(instance.InstanceCreateTime),
				})
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to describe RDS instances: %w", err)
	}

	return rows, nil
}
