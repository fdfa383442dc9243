package workers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryBase = 500 * time.Millisecond
	maxRetryDelay    = 30 * time.Second
)

// SentimentJob analyzes feedback comments in the background.
//
// Feedbacks arrive through Enqueue right after insert and through a periodic
// sweep of unanalyzed rows, which catches up after restarts and dropped
// enqueues. A feedback is queued at most once at a time.
type SentimentJob struct {
	feedbacks   store.FeedbackRepository
	analyzer    adapter.SentimentAnalyzer
	publisher   service.ChangePublisher
	isRetryable func(error) bool

	workers       int
	sweepInterval time.Duration
	sweepLimit    uint64
	maxRetries    uint64
	retryBase     time.Duration
	now           func() time.Time

	queue chan models.Feedback

	pendingMu sync.Mutex
	pending   map[string]struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSentimentJob returns an idle job; call Start to run it. analyzer may be
// nil when no analyzer is configured, in which case the job does nothing.
// isRetryable classifies storage errors; nil means storage errors are final.
func NewSentimentJob(
	feedbacks store.FeedbackRepository,
	analyzer adapter.SentimentAnalyzer,
	publisher service.ChangePublisher,
	isRetryable func(error) bool,
	cfg config.Workers,
	log *logger.Logger,
) *SentimentJob {
	if isRetryable == nil {
		isRetryable = func(error) bool { return false }
	}

	return &SentimentJob{
		feedbacks:     feedbacks,
		analyzer:      analyzer,
		publisher:     publisher,
		isRetryable:   isRetryable,
		workers:       max(cfg.SentimentWorkers, 1),
		sweepInterval: cfg.SweepInterval,
		sweepLimit:    uint64(max(cfg.QueueSize, 1)),
		maxRetries:    uint64(max(cfg.MaxRetries, 0)),
		retryBase:     defaultRetryBase,
		now:           time.Now,
		queue:         make(chan models.Feedback, max(cfg.QueueSize, 1)),
		pending:       make(map[string]struct{}),
		logger:        log,
	}
}

// Enqueue implements service.SentimentQueue. It never blocks: when the queue
// is full the feedback is left for the next sweep.
func (j *SentimentJob) Enqueue(ctx context.Context, feedback models.Feedback) {
	if j.analyzer == nil || strings.TrimSpace(feedback.Comment) == "" {
		return
	}

	j.pendingMu.Lock()
	defer j.pendingMu.Unlock()

	if _, ok := j.pending[feedback.ID]; ok {
		return
	}

	select {
	case j.queue <- feedback:
		j.pending[feedback.ID] = struct{}{}
	default:
		logger.FromContext(ctx).Warn().Str("feedback_id", feedback.ID).Msg("sentiment queue is full, leaving feedback to the sweep")
	}
}

// Start launches the consumers and the sweeper. A running job is restarted.
func (j *SentimentJob) Start(ctx context.Context) {
	if j.analyzer == nil {
		j.logger.Info().Str("func", "SentimentJob.Start").Msg("sentiment analyzer is not configured, job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(j.workers)
	j.mu.Unlock()

	for range j.workers {
		go func() {
			defer j.wg.Done()
			j.consume(jobCtx)
		}()
	}

	if j.sweepInterval > 0 {
		j.wg.Add(1)
		go func() {
			defer j.wg.Done()
			j.sweepLoop(jobCtx)
		}()
	}

	j.logger.Info().Int("workers", j.workers).Dur("sweep_interval", j.sweepInterval).Msg("sentiment job started")
}

// Stop cancels the job and waits for in-flight analyses to return.
// Queued feedbacks stay queued until the next Start.
func (j *SentimentJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *SentimentJob) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case feedback := <-j.queue:
			if err := j.Process(ctx, feedback); err != nil {
				j.logger.Err(err).Str("func", "SentimentJob.consume").Str("feedback_id", feedback.ID).Msg("sentiment analysis failed")
			}
			j.done(feedback.ID)
		}
	}
}

func (j *SentimentJob) done(id string) {
	j.pendingMu.Lock()
	delete(j.pending, id)
	j.pendingMu.Unlock()
}

func (j *SentimentJob) sweepLoop(ctx context.Context) {
	j.Sweep(ctx)

	t := time.NewTicker(j.sweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep enqueues feedbacks with a comment that were never analyzed.
func (j *SentimentJob) Sweep(ctx context.Context) {
	feedbacks, err := j.feedbacks.ListUnanalyzed(ctx, j.sweepLimit)
	if err != nil {
		j.logger.Err(err).Str("func", "SentimentJob.Sweep").Msg("failed to list unanalyzed feedbacks")
		return
	}

	for _, feedback := range feedbacks {
		j.Enqueue(ctx, feedback)
	}
	if len(feedbacks) > 0 {
		j.logger.Debug().Int("count", len(feedbacks)).Msg("sweep queued unanalyzed feedbacks")
	}
}

// Process analyzes one feedback, stores the result and publishes the
// updated row. Blank comments are skipped without calling the analyzer.
func (j *SentimentJob) Process(ctx context.Context, feedback models.Feedback) error {
	if strings.TrimSpace(feedback.Comment) == "" {
		return nil
	}

	var result models.SentimentResult
	err := retry.Do(ctx, j.backoff(), func(ctx context.Context) error {
		analyzed, err := j.analyzer.Analyze(ctx, feedback.Comment)
		if err != nil {
			if adapter.IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		result = analyzed
		return nil
	})
	if err != nil {
		return fmt.Errorf("analyze feedback %s: %w", feedback.ID, err)
	}

	var updated models.Feedback
	err = retry.Do(ctx, j.backoff(), func(ctx context.Context) error {
		saved, err := j.feedbacks.SaveSentiment(ctx, feedback.ID, result, j.now().UTC())
		if err != nil {
			if j.isRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		updated = saved
		return nil
	})
	if err != nil {
		return fmt.Errorf("save sentiment of feedback %s: %w", feedback.ID, err)
	}

	j.publisher.PublishChange(ctx, models.EntityFeedbacks, models.ChangeUpdate, updated.UserID, updated)
	return nil
}

func (j *SentimentJob) backoff() retry.Backoff {
	b := retry.NewExponential(j.retryBase)
	b = retry.WithCappedDuration(maxRetryDelay, b)
	return retry.WithMaxRetries(j.maxRetries, b)
}
