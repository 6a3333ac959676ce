package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushMetrics pushes gathered metrics to a Pushgateway. A batch run is too
// short-lived for scraping, so the run pushes its final state once on the
// way out.
func PushMetrics(ctx context.Context, url, job string, g prometheus.Gatherer) error {
	if err := push.New(url, job).Gatherer(g).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
