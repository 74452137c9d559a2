package keepalive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/metrics"
	"github.com/robfig/cron/v3"
)

// Ping issues a single GET against url. Any HTTP response counts as success;
// only transport failures are reported as errors.
func Ping(ctx context.Context, client *http.Client, url string) (int, error) {

	slog.Info("🔄 Pinging server", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.KeepAlivePings.WithLabelValues("failure").Inc()
		return 0, fmt.Errorf("building ping request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		metrics.KeepAlivePings.WithLabelValues("failure").Inc()
		slog.Warn("❌ Server ping failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("pinging %s: %w", url, err)
	}
	defer resp.Body.Close()

	metrics.KeepAlivePings.WithLabelValues("success").Inc()
	slog.Info("✅ Server ping successful", slog.Int("status", resp.StatusCode))

	return resp.StatusCode, nil
}

// Job pings a URL on a cron schedule evaluated in UTC, plus once shortly
// after it starts.
type Job struct {
	cron   *cron.Cron
	client *http.Client
	url    string
	delay  time.Duration
	cancel context.CancelFunc
}

func New(cfg config.KeepAlive, url string) (*Job, error) {

	c := cron.New(cron.WithLocation(time.UTC))

	job := &Job{
		cron:   c,
		client: &http.Client{Timeout: cfg.Timeout},
		url:    url,
		delay:  cfg.InitialDelay,
	}

	if _, err := c.AddFunc(cfg.Schedule, job.run); err != nil {
		return nil, fmt.Errorf("invalid keep-alive schedule %q: %w", cfg.Schedule, err)
	}

	return job, nil
}

func (j *Job) run() {
	// failures are logged and counted by Ping
	_, _ = Ping(context.Background(), j.client, j.url)
}

// Start begins the schedule and arms the initial ping.
func (j *Job) Start(ctx context.Context) {

	ctx, j.cancel = context.WithCancel(ctx)

	j.cron.Start()

	go func() {
		timer := time.NewTimer(j.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			_, _ = Ping(ctx, j.client, j.url)
		case <-ctx.Done():
		}
	}()

	slog.Info("🕐 Keep-alive job initialized", slog.String("url", j.url))
}

// Stop halts the schedule and returns a context that is done once any
// running ping has finished.
func (j *Job) Stop() context.Context {
	if j.cancel != nil {
		j.cancel()
	}

	return j.cron.Stop()
}
