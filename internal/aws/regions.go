package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// RegionColumns are the headers of the region table
var RegionColumns = []string{"Region", "Endpoint", "OptIn"}

// ListRegions returns the regions enabled for the account, queried through the given region's endpoint
func ListRegions(ctx context.Context, p client.ConfigProvider, region string) ([]Row, error) {
	return listRegions(ctx, ec2.New(p, aws.NewConfig().WithRegion(region)))
}

func listRegions(ctx context.Context, svc ec2iface.EC2API) ([]Row, error) {
	result, err := svc.DescribeRegionsWithContext(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false), // Only get enabled regions
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	rows := make([]Row, 0, len(result.Regions))
	for _, r := range result.Regions {
		rows = append(rows, Row{
			aws.StringValue(r.RegionName),
			aws.StringValue(r.Endpoint),
			aws.StringValue(r.OptInStatus),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	return rows, nil
}
