package main

import (
	interaction "PartyHub.com/cmd/api/handlers/interaction"
	user "PartyHub.com/cmd/api/handlers/user"
	video "PartyHub.com/cmd/api/handlers/video"
	"PartyHub.com/cmd/api/router/authfunc"
	"PartyHub.com/cmd/catalog/service"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz, users *service.UserService) {
	api := r.Group("/api", authfunc.Auth(users)...)

	api.GET("/videos", video.ListVideos)
	api.POST("/videos", video.PublishVideo)
	api.GET("/videos/:id", video.VideoVisit)
	api.PUT("/videos/:id", video.UpdateVideo)
	api.DELETE("/videos/:id", video.DeleteVideo)
	api.POST("/videos/:id/like", interaction.LikeAction)
	api.GET("/videos/:id/comments", interaction.CommentList)
	api.POST("/videos/:id/comments", interaction.CreateComment)
	api.POST("/videos/:id/telegram-click", video.TelegramClick)

	api.GET("/user/likes", interaction.LikeList)
	api.GET("/user/stats", user.UserStats)
	api.GET("/auth/user", user.GetCurrentUser)

	api.POST("/upload", video.UploadVideoFile)
}
