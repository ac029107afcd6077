package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// flowTTL bounds how long an abandoned booking flow survives in Redis.
const flowTTL = 30 * time.Minute

// FlowStore persists in-progress booking flows in Redis so a flow survives
// across requests while it is being driven by the client.
type FlowStore struct {
	Client *redis.Client
}

func NewFlowStore(client *redis.Client) *FlowStore {
	return &FlowStore{Client: client}
}

func flowKey(flowID string) string {
	return "bookingflow:" + flowID
}

// Save writes the flow back, refreshing its TTL.
func (s *FlowStore) Save(ctx context.Context, flow *BookingFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal booking flow: %w", err)
	}
	if err := s.Client.Set(ctx, flowKey(flow.ID), data, flowTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking flow: %w", err)
	}
	return nil
}

// Get loads a flow by ID; returns nil when the flow is unknown or expired.
func (s *FlowStore) Get(ctx context.Context, flowID string) (*BookingFlow, error) {
	data, err := s.Client.Get(ctx, flowKey(flowID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking flow: %w", err)
	}

	var flow BookingFlow
	if err := json.Unmarshal([]byte(data), &flow); err != nil {
		return nil, fmt.Errorf("failed to parse booking flow: %w", err)
	}
	return &flow, nil
}

// Delete removes a flow once it has served its purpose.
func (s *FlowStore) Delete(ctx context.Context, flowID string) error {
	return s.Client.Del(ctx, flowKey(flowID)).Err()
}
