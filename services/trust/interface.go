package trust

import (
	"context"

	"trustcheck/models"
)

// CompletionClient asks the external conversational AI a question and returns
// its free-text answer. Implementations make exactly one blocking call per
// invocation; nothing is retried.
type CompletionClient interface {
	Ask(ctx context.Context, query, user string) (string, error)
}

// Service runs the trust-check pipeline: validate the username, enforce the
// daily quota, query the completion provider, and extract the score.
type Service interface {
	HandleCheck(ctx context.Context, req models.TrustCheckRequest) (*models.TrustCheckResult, error)
}
