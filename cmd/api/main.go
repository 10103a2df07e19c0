package main

import (
	"context"
	"fmt"

	interaction "PartyHub.com/cmd/api/handlers/interaction"
	user "PartyHub.com/cmd/api/handlers/user"
	video "PartyHub.com/cmd/api/handlers/video"
	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/cmd/catalog/service"
	"PartyHub.com/config"
	"PartyHub.com/pkg/cache"
	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/mq"
	"PartyHub.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func main() {
	config.Init()

	store, err := db.Init()
	if err != nil {
		panic(err)
	}

	cacheManager := cache.NewVideoCacheManager(cache.NewClient())

	var producer *mq.Producer
	if url := config.ConfigInfo.RabbitMQ.URL; url != "" {
		producer, err = mq.NewProducer(url)
		if err != nil {
			hlog.Warnf("engagement event producer disabled: %v", err)
			producer = nil
		} else {
			defer producer.Close()
		}
	}

	if err := oss.InitMinio(); err != nil {
		hlog.Warnf("upload staging disabled: %v", err)
	}

	userService := service.NewUserService(store)
	video.Init(service.NewVideoService(store, cacheManager, producer))
	interaction.Init(
		service.NewLikeService(store, cacheManager, producer),
		service.NewCommentService(store),
	)
	user.Init(userService, service.NewStatsService(store))

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(512*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-Id"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r, userService)

	r.Spin()
}
