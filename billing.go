package mailtrap

import (
	"context"
	"net/http"
	"time"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// BillingCycleUsage is the usage of the current billing cycle. Testing and
// sending are billed separately and report different counters.
type BillingCycleUsage struct {
	Billing BillingCycle   `json:"billing"`
	Testing TestingBilling `json:"testing"`
	Sending SendingBilling `json:"sending"`
}

// BillingCycle bounds the current cycle.
type BillingCycle struct {
	CycleStart time.Time `json:"cycle_start"`
	CycleEnd   time.Time `json:"cycle_end"`
}

// BillingPlan names a subscription plan.
type BillingPlan struct {
	Name string `json:"name"`
}

// MessageCount is a counter with its plan limit.
type MessageCount struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
}

// TestingBilling is the sandbox plan and usage.
type TestingBilling struct {
	Plan  BillingPlan  `json:"plan"`
	Usage TestingUsage `json:"usage"`
}

// TestingUsage counts sandbox messages.
type TestingUsage struct {
	SentMessagesCount      MessageCount `json:"sent_messages_count"`
	ForwardedMessagesCount MessageCount `json:"forwarded_messages_count"`
}

// SendingBilling is the sending plan and usage.
type SendingBilling struct {
	Plan  BillingPlan  `json:"plan"`
	Usage SendingUsage `json:"usage"`
}

// SendingUsage counts sent messages.
type SendingUsage struct {
	SentMessagesCount MessageCount `json:"sent_messages_count"`
}

// BillingService reads account billing.
type BillingService struct {
	client *api.Client
}

// CurrentUsage returns the usage of the current billing cycle.
func (s *BillingService) CurrentUsage(ctx context.Context, accountID int64) (*BillingCycleUsage, error) {
	var result BillingCycleUsage
	if err := s.client.Do(ctx, http.MethodGet, accountPath(accountID, "/billing/usage"), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
