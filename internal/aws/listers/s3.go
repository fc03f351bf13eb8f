package listers

import (
	"context"
	"fmt"

	awslib "awsls/internal/aws"
	"awsls/internal/logging"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Lister lists the S3 buckets located in the requested region.
// Buckets are account-wide, so every bucket's location is looked up and compared.
type S3Lister struct {
	newClient func(p client.ConfigProvider, region string) s3iface.S3API
}

func init() {
	if err := awslib.DefaultRegistry.Register(NewS3Lister()); err != nil {
		panic(fmt.Sprintf("Failed to register S3 lister: %v", err))
	}
}

// NewS3Lister creates an S3Lister backed by the SDK client
func NewS3Lister() *S3Lister {
	return &S3Lister{
		newClient: func(p client.ConfigProvider, region string) s3iface.S3API {
			return s3.New(p, aws.NewConfig().WithRegion(region))
		},
	}
}

// ArgumentName implements Lister interface
func (l *S3Lister) ArgumentName() string {
	return "s3"
}

// Label implements Lister interface
func (l *S3Lister) Label() string {
	return "S3 Buckets"
}

// Columns implements Lister interface
func (l *S3Lister) Columns() []string {
	return []string{"BucketName", "Region", "CreationDate"}
}

// List implements Lister interface
func (l *S3Lister) List(ctx context.Context, opts awslib.ListOptions) ([]awslib.Row, error) {
	svc := l.newClient(opts.Session, opts.Region)

	listOutput, err := svc.ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list S3 buckets: %w", err)
	}

	tracker := opts.Track("Locating buckets", len(listOutput.Buckets))
	defer tracker.Done()

	results := make([]awslib.ItemResult, 0, len(listOutput.Buckets))
	for _, bucket := range listOutput.Buckets {
		result, err := l.describeBucket(ctx, svc, bucket, opts.Region)
		tracker.Increment()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return awslib.Rows(l.ArgumentName(), results), nil
}

// describeBucket resolves a bucket's location. A location query rejected by the API
// skips the bucket; any other failure aborts the listing.
func (l *S3Lister) describeBucket(ctx context.Context, svc s3iface.S3API, bucket *s3.Bucket, region string) (awslib.ItemResult, error) {
	name := aws.StringValue(bucket.Name)

	locationOutput, err := svc.GetBucketLocationWithContext(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		if awslib.IsAPIError(err) {
			return awslib.ItemResult{Name: name, Status: awslib.ItemSkipped, Err: err}, nil
		}
		return awslib.ItemResult{}, fmt.Errorf("failed to get location of bucket %s: %w", name, err)
	}

	// An empty constraint means us-east-1
	bucketRegion := s3.NormalizeBucketLocation(aws.StringValue(locationOutput.LocationConstraint))
	if bucketRegion != region {
		logging.Debug("Skipping bucket in different region", map[string]interface{}{
			"bucket":        name,
			"bucket_region": bucketRegion,
			"target_region": region,
		})
		return awslib.ItemResult{Name: name, Status: awslib.ItemSkipped}, nil
	}

	return awslib.ItemResult{
		Name:   name,
		Status: awslib.ItemListed,
		Row:    awslib.Row{name, bucketRegion, awslib.FormatTime(bucket.CreationDate)},
	}, nil
}
