package worker

import (
	"github.com/spec-kit/ops-portal/internal/service"
)

// StartActivityFeed registers audit feed handlers.
func StartActivityFeed(feed *service.ActivityFeed) {
	if feed == nil {
		return
	}
	feed.RegisterHandlers()
}
