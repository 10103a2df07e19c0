package handlers

import (
	"PartyHub.com/cmd/catalog/service"
	"PartyHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var videoService *service.VideoService

func Init(video *service.VideoService) {
	videoService = video
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type ListVideosParam struct {
	Country   string `query:"country"`
	EventType string `query:"eventType"`
	Hashtags  string `query:"hashtags"`
	UserId    string `query:"userId"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

type PublishVideoParam struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	VideoUrl     string `form:"videoUrl" json:"videoUrl"`
	CoverUrl     string `form:"coverUrl" json:"coverUrl"`
	TelegramLink string `form:"telegramLink" json:"telegramLink"`
	Country      string `form:"country" json:"country"`
	EventType    string `form:"eventType" json:"eventType"`
	Hashtags     string `form:"hashtags" json:"hashtags"`
}

type UpdateVideoParam struct {
	Title        *string `form:"title" json:"title"`
	Description  *string `form:"description" json:"description"`
	VideoUrl     *string `form:"videoUrl" json:"videoUrl"`
	CoverUrl     *string `form:"coverUrl" json:"coverUrl"`
	TelegramLink *string `form:"telegramLink" json:"telegramLink"`
	Country      *string `form:"country" json:"country"`
	EventType    *string `form:"eventType" json:"eventType"`
	Hashtags     *string `form:"hashtags" json:"hashtags"`
}
