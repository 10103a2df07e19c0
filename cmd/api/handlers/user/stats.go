package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// UserStats handles GET /api/user/stats: the per-creator rollup over all
// of their videos.
func UserStats(ctx context.Context, c *app.RequestContext) {
	userId := c.GetString("user_id")

	stats, err := statsService.GetUserVideoStats(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}
