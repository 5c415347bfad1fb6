package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmissionCountsByResult(t *testing.T) {
	before := testutil.ToFloat64(QuizSubmissionCounter.WithLabelValues(SubmissionSuccess))
	rejected := testutil.ToFloat64(QuizSubmissionCounter.WithLabelValues(SubmissionRejected))

	ObserveSubmission(SubmissionSuccess, 1, 2)
	ObserveSubmission(SubmissionRejected, 0, 0)

	if got := testutil.ToFloat64(QuizSubmissionCounter.WithLabelValues(SubmissionSuccess)); got != before+1 {
		t.Fatalf("expected success counter %v, got %v", before+1, got)
	}
	if got := testutil.ToFloat64(QuizSubmissionCounter.WithLabelValues(SubmissionRejected)); got != rejected+1 {
		t.Fatalf("expected rejected counter %v, got %v", rejected+1, got)
	}
	if n := testutil.CollectAndCount(QuizScoreRatio); n != 1 {
		t.Fatalf("expected one score histogram, got %d", n)
	}
}
