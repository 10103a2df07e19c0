package authfunc

import (
	"context"

	"PartyHub.com/cmd/catalog/service"
	"PartyHub.com/config"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Auth(users *service.UserService) []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		FixedIdentityFunc(users),
	)
}

// FixedIdentityFunc attributes the request to the X-User-Id header or,
// when absent, to the configured default identity. Real token
// verification lives outside this service; the user record is upserted
// on first sight so later operations can reference it.
func FixedIdentityFunc(users *service.UserService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId := string(c.GetHeader("X-User-Id"))
		if userId == "" {
			userId = config.ConfigInfo.Auth.DefaultUserId
		}
		if _, err := users.EnsureUser(ctx, userId); err != nil {
			hlog.CtxErrorf(ctx, "failed to ensure user %q: %v", userId, err)
		}
		c.Set("user_id", userId)
		c.Next(ctx)
	}
}
