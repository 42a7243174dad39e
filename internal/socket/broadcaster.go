package socket

import "github.com/lionfit/gym-management-backend/internal/repository"

// Broadcaster provides high-level methods for pushing refreshed
// snapshots to every connected client. Each method sends the full
// current collection, never a delta.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// BroadcastMembers pushes the full member list
func (b *Broadcaster) BroadcastMembers(members []*repository.Member) {
	if b == nil {
		return
	}
	b.hub.Broadcast(MessageMembersSnapshot, members)
}

// BroadcastSubscriptions pushes the full plan list
func (b *Broadcaster) BroadcastSubscriptions(subscriptions []*repository.Subscription) {
	if b == nil {
		return
	}
	b.hub.Broadcast(MessageSubscriptionsSnapshot, subscriptions)
}

// BroadcastPayments pushes the full payment list
func (b *Broadcaster) BroadcastPayments(payments []*repository.Payment) {
	if b == nil {
		return
	}
	b.hub.Broadcast(MessagePaymentsSnapshot, payments)
}

// BroadcastStats pushes recomputed dashboard statistics
func (b *Broadcaster) BroadcastStats(stats interface{}) {
	if b == nil {
		return
	}
	b.hub.Broadcast(MessageStatsUpdated, stats)
}
