package trust

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trustcheck/models"
	"trustcheck/services/quota"
)

// usernamePattern is the X handle shape: "@" followed by 1-15 word characters.
var usernamePattern = regexp.MustCompile(`^@\w{1,15}$`)

// scorePattern is the frozen contract with the completion provider's
// free-text answers. It tolerates any casing and both the ASCII and
// full-width colon.
var scorePattern = regexp.MustCompile(`(?i)trust score[:：]\s*(\d+)%`)

// DefaultTrustService is the production trust-check pipeline.
type DefaultTrustService struct {
	Completion  CompletionClient
	Quota       quota.Store
	DailyLimit  int
	DefaultUser string
	Logger      *zap.Logger
}

func (s *DefaultTrustService) limit() int {
	if s.DailyLimit > 0 {
		return s.DailyLimit
	}
	return 3
}

func (s *DefaultTrustService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// HandleCheck validates the username, gates on the caller's daily quota,
// makes one blocking completion call, records the usage, and extracts the
// trust score from the answer. Requests without a UserID skip the quota gate.
func (s *DefaultTrustService) HandleCheck(ctx context.Context, req models.TrustCheckRequest) (*models.TrustCheckResult, error) {
	username := strings.TrimSpace(req.Username)
	if !usernamePattern.MatchString(username) {
		return nil, ValidationError{Username: req.Username}
	}

	if req.UserID != "" {
		// The reset is persisted before the limit is evaluated, so
		// yesterday's exhausted count never blocks today's first check.
		rec, err := s.Quota.ResetIfStale(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("quota lookup for %s: %w", req.UserID, err)
		}
		if rec.Count >= s.limit() {
			return nil, QuotaExceededError{Limit: s.limit()}
		}
	}

	caller := req.UserID
	if caller == "" {
		caller = s.DefaultUser
	}

	query := fmt.Sprintf("Check the trustworthiness of %s", username)
	answer, err := s.Completion.Ask(ctx, query, caller)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" {
		// The completion call succeeded, so the check counts even when the
		// answer turns out to be unparseable. A failed increment is logged
		// rather than failing a response the caller already paid for.
		if err := s.Quota.Increment(ctx, req.UserID); err != nil {
			s.logger().Warn("usage increment failed",
				zap.String("userId", req.UserID), zap.Error(err))
		}
	}

	score, ok := extractScore(answer)
	if !ok {
		s.logger().Warn("unparseable completion answer", zap.String("username", username))
		return nil, ParseError{}
	}
	return &models.TrustCheckResult{TrustScore: score}, nil
}

// extractScore pulls the percentage out of the provider's answer. Matches
// outside [0,100] are rejected: the record is bounded and a value beyond it
// means the provider did not answer the question asked.
func extractScore(answer string) (int, bool) {
	m := scorePattern.FindStringSubmatch(answer)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil || score < 0 || score > 100 {
		return 0, false
	}
	return score, true
}
