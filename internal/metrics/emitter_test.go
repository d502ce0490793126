package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// fakeCloudWatch records PutMetricData calls.
type fakeCloudWatch struct {
	mu    sync.Mutex
	calls []*cloudwatch.PutMetricDataInput
	err   error
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestCountPublishesDatum(t *testing.T) {
	fake := &fakeCloudWatch{}
	e := NewEmitter(fake)

	e.Count(context.Background(), MetricShippingPriceFallback)

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.calls))
	}
	in := fake.calls[0]
	if *in.Namespace != "StorefrontAPI" {
		t.Fatalf("unexpected namespace %s", *in.Namespace)
	}
	if len(in.MetricData) != 1 || *in.MetricData[0].MetricName != MetricShippingPriceFallback {
		t.Fatalf("unexpected metric data: %+v", in.MetricData)
	}
	if *in.MetricData[0].Value != 1 {
		t.Fatalf("expected count of 1, got %v", *in.MetricData[0].Value)
	}
}

func TestCountSwallowsEmitError(t *testing.T) {
	fake := &fakeCloudWatch{err: errors.New("throttled")}
	e := NewEmitter(fake)

	// must not panic or propagate
	e.Count(context.Background(), MetricShippingPriceFallback)
}

func TestNilEmitterIsSafe(t *testing.T) {
	var e *Emitter
	e.Count(context.Background(), MetricShippingPriceFallback)
}
