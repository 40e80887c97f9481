package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/events"
)

// ActivityFeed subscribes to broadcast events and writes an operator-visible
// audit line for each. Handlers never return errors; a broken feed must not
// affect the emitting operation.
type ActivityFeed struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityFeed creates the feed.
func NewActivityFeed(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityFeed {
	return &ActivityFeed{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (f *ActivityFeed) RegisterHandlers() {
	if f.dispatcher == nil {
		return
	}
	f.dispatcher.Subscribe(events.EventEmployeeStatusChanged, f.handleEmployeeStatusChanged)
	f.dispatcher.Subscribe(events.EventLeavesUpdated, f.handleLeavesUpdated)
	f.dispatcher.Subscribe(events.EventEnquiryResolved, f.handleEnquiryResolved)
	f.dispatcher.Subscribe(events.EventLoginRecorded, f.handleLoginRecorded)
}

func (f *ActivityFeed) handleEmployeeStatusChanged(_ context.Context, event events.Event) error {
	f.logger.Info("EmployeeStatusChanged", zap.Any("payload", event.Payload))
	return nil
}

func (f *ActivityFeed) handleLeavesUpdated(_ context.Context, event events.Event) error {
	f.logger.Info("LeavesUpdated", zap.Any("payload", event.Payload))
	return nil
}

func (f *ActivityFeed) handleEnquiryResolved(_ context.Context, event events.Event) error {
	f.logger.Info("EnquiryResolved", zap.Any("payload", event.Payload))
	return nil
}

func (f *ActivityFeed) handleLoginRecorded(_ context.Context, event events.Event) error {
	f.logger.Debug("LoginRecorded", zap.Any("payload", event.Payload))
	return nil
}
