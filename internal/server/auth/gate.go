package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
)

const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"

	ReasonPublic  = "public"
	ReasonToken   = "token"
	ReasonMissing = "missing"
)

// Verifier is the part of TokenCodec the gate needs.
type Verifier interface {
	Verify(token string) (string, error)
}

// DecisionRecorder observes gate outcomes, e.g. to count them.
type DecisionRecorder interface {
	RecordDecision(decision, reason string)
}

// Gate decides, per request, whether the named operations may run. It reads
// only the policy and the token codec and never touches the account store.
type Gate struct {
	policy   *Policy
	verifier Verifier
	logger   logging.Logger
	recorder DecisionRecorder
}

func NewGate(policy *Policy, verifier Verifier, logger logging.Logger, recorder DecisionRecorder) *Gate {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Gate{policy: policy, verifier: verifier, logger: logger.With("module", "gate"), recorder: recorder}
}

// Authorize classifies operations and, unless they are all public, requires
// a valid bearer token in authorization (the raw header value). On success
// the returned context carries the account id; on failure the error is
// common.ErrTokenMissing or matches common.ErrInvalidToken, and the input
// context is returned unchanged.
func (g *Gate) Authorize(ctx context.Context, operations []string, authorization string) (context.Context, error) {
	if g.policy.AllPublic(operations) {
		g.record(DecisionAllow, ReasonPublic)
		return ctx, nil
	}

	token, ok := BearerToken(authorization)
	if !ok {
		g.record(DecisionDeny, ReasonMissing)
		g.logger.Debug(ctx, "request denied", "reason", ReasonMissing, "operations", operations)
		return ctx, common.ErrTokenMissing
	}

	accountID, err := g.verifier.Verify(token)
	if err != nil {
		reason := string(KindMalformed)
		var verr *VerificationError
		if errors.As(err, &verr) {
			reason = string(verr.Kind)
		}
		g.record(DecisionDeny, reason)
		g.logger.Info(ctx, "request denied", "reason", reason, "operations", operations)
		if !errors.Is(err, common.ErrInvalidToken) {
			err = &VerificationError{Kind: KindMalformed, Err: err}
		}
		return ctx, err
	}

	g.record(DecisionAllow, ReasonToken)
	return WithAccountID(ctx, accountID), nil
}

func (g *Gate) record(decision, reason string) {
	if g.recorder != nil {
		g.recorder.RecordDecision(decision, reason)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// value. The scheme is case-insensitive; anything else is rejected.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
