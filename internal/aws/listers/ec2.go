package listers

import (
	"context"
	"fmt"

	awslib "awsls/internal/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// nameTagKey is the tag whose value fills the Name column
const nameTagKey = "Name"

// EC2Lister lists EC2 instances
type EC2Lister struct {
	newClient func(p client.ConfigProvider, region string) ec2iface.EC2API
}

func init() {
	if err := awslib.DefaultRegistry.Register(NewEC2Lister()); err != nil {
		panic(fmt.Sprintf("Failed to register EC2 lister: %v", err))
	}
}

// NewEC2Lister creates an EC2Lister backed by the SDK client
func NewEC2Lister() *EC2Lister {
	return &EC2Lister{
		newClient: func(p client.ConfigProvider, region string) ec2iface.EC2API {
			return ec2.New(p, aws.NewConfig().WithRegion(region))
		},
	}
}

// ArgumentName implements Lister interface
func (l *EC2Lister) ArgumentName() string {
	return "ec2"
}

// Label implements Lister interface
func (l *EC2Lister) Label() string {
	return "EC2 Instances"
}

// Columns implements Lister interface
func (l *EC2Lister) Columns() []string {
	return []string{"InstanceId", "State", "Type", "AZ", "LaunchTime", "Name"}
}

// List implements Lister interface
func (l *EC2Lister) List(ctx context.Context, opts awslib.ListOptions) ([]awslib.Row, error) {
	svc := l.newClient(opts.Session, opts.Region)

	var rows []awslib.Row
	err := svc.DescribeInstancesPagesWithContext(ctx, &ec2.DescribeInstancesInput{},
		func(page *ec2.DescribeInstancesOutput, lastPage bool) bool {
			for _, reservation := range page.Reservations {
				for _, instance := range reservation.Instances {
					rows = append(rows, instanceRow(instance))
				}
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to describe EC2 instances: %w", err)
	}

	return rows, nil
}

func instanceRow(instance *ec2.Instance) awslib.Row {
	var state, zone string
	if instance.State != nil {
		state = aws.StringValue(instance.State.Name)
	}
	if instance.Placement != nil {
		zone = aws.StringValue(instance.Placement.AvailabilityZone)
	}

	return awslib.Row{
		aws.StringValue(instance.InstanceId),
		state,
		aws.StringValue(instance.InstanceType),
		zone,
		awslib.FormatTime(instance.LaunchTime),
		nameTag(instance.Tags),
	}
}

// nameTag returns the value of the first tag keyed exactly "Name"
func nameTag(tags []*ec2.Tag) string {
	for _, tag := range tags {
		if tag != nil && aws.StringValue(tag.Key) == nameTagKey {
			return aws.StringValue(tag.Value)
		}
	}
	return ""
}
