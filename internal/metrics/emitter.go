// Package metrics emits operational counters to CloudWatch. The checkout flow
// is deliberately lenient in one place (unparsable shipping prices default to
// zero instead of failing the order); this package makes those triggers
// visible so upstream data issues do not stay silent.
package metrics

import (
	"context"
	"errors"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
	log "github.com/sirupsen/logrus"

	"github.com/houseofmira/storefront-api/internal/aws"
)

const namespace = "StorefrontAPI"

// Metric names.
const (
	MetricShippingPriceFallback = "ShippingPriceParseFallback"
)

// Emitter publishes counters. A nil *Emitter is valid and drops everything,
// so callers never have to branch on whether metrics are configured.
type Emitter struct {
	client  aws.CloudWatchAPI
	nowFunc func() time.Time
}

// NewEmitter returns an Emitter bound to a CloudWatch client.
func NewEmitter(client aws.CloudWatchAPI) *Emitter {
	return &Emitter{
		client:  client,
		nowFunc: time.Now,
	}
}

// Count publishes a single count datum. Emission failures are logged and
// swallowed: metrics must never fail a checkout.
func (e *Emitter) Count(ctx context.Context, name string) {
	if e == nil || e.client == nil {
		return
	}

	ts := e.nowFunc()
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String(name),
				Timestamp:  &ts,
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(1),
			},
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.WithError(err).WithField("code", apiErr.ErrorCode()).Warnf("put metric %s failed", name)
			return
		}
		log.WithError(err).Warnf("put metric %s failed", name)
	}
}
