package minio

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/tags"

	"hotelmedia/internal/domain/model"
	"hotelmedia/pkg/metrics"
)

type Buckets struct {
	minioClient *minio.Client
	region      string
	cfg         *ListerConfig
}

func NewBuckets(minioClient *minio.Client, region string, cfg *ListerConfig) *Buckets {
	return &Buckets{
		minioClient: minioClient,
		region:      region,
		cfg:         cfg,
	}
}

func (b *Buckets) ListBuckets(ctx context.Context) (buckets []model.Bucket, err error) {
	defer func(start time.Time) { metrics.ObserveStorage("list_buckets", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	infos, err := b.minioClient.ListBuckets(ctx)
	if err != nil {
		return nil, classify(err)
	}

	buckets = make([]model.Bucket, 0, len(infos))
	for _, info := range infos {
		buckets = append(buckets, model.Bucket{Name: info.Name, CreatedAt: info.CreationDate})
	}

	return buckets, nil
}

func (b *Buckets) CreateBucket(ctx context.Context, name string, policy model.BucketPolicy) (err error) {
	defer func(start time.Time) { metrics.ObserveStorage("create_bucket", start, err) }(time.Now())

	var doc string
	if policy.Public {
		if doc, err = publicReadPolicy(name); err != nil {
			return err
		}
	}

	ctx, cancel := withTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	if err := b.minioClient.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: b.region}); err != nil {
		return classify(err)
	}

	// A bucket must not outlive a failed policy; ensure skips buckets that exist.
	if doc != "" {
		if err := b.minioClient.SetBucketPolicy(ctx, name, doc); err != nil {
			if rerr := b.minioClient.RemoveBucket(ctx, name); rerr != nil {
				logger.Error("failed to remove bucket after policy error", "bucket", name, "err", rerr)
			}

			return classify(err)
		}
	}

	prefixes := make([]string, 0, len(policy.AllowedMimeTypes))
	for _, m := range policy.AllowedMimeTypes {
		prefixes = append(prefixes, strings.TrimSuffix(m, "*"))
	}

	bucketTags, err := tags.NewTags(map[string]string{
		"allowed-mime-prefixes": strings.Join(prefixes, " "),
		"file-size-limit":       strconv.FormatInt(policy.FileSizeLimit, 10),
	}, false)
	if err != nil {
		return err
	}

	// Tags only document the limits; the manager enforces them before uploading.
	if err := b.minioClient.SetBucketTagging(ctx, name, bucketTags); err != nil {
		logger.Warn("failed to tag bucket", "bucket", name, "err", err)
	}

	return nil
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

func publicReadPolicy(bucket string) (string, error) {
	doc, err := json.Marshal(policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: map[string][]string{"AWS": {"*"}},
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/*"},
		}},
	})
	if err != nil {
		return "", err
	}

	return string(doc), nil
}
