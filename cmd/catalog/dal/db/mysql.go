package db

import (
	"context"
	"strings"
	"time"

	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MysqlStorage is the durable backend for deployments that outlive the
// process. Semantics match MemoryStorage; row-level atomicity comes from
// transactions instead of the mutex.
type MysqlStorage struct {
	db *gorm.DB
}

func NewMysqlStorage(db *gorm.DB) *MysqlStorage {
	return &MysqlStorage{db: db}
}

type userPO struct {
	UserId          string `gorm:"column:user_id;primaryKey"`
	Email           string `gorm:"column:email"`
	FirstName       string `gorm:"column:first_name"`
	LastName        string `gorm:"column:last_name"`
	ProfileImageUrl string `gorm:"column:profile_image_url"`
	TelegramLink    string `gorm:"column:telegram_link"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (userPO) TableName() string { return "users" }

type videoPO struct {
	VideoId        int64  `gorm:"column:video_id;primaryKey;autoIncrement"`
	UserId         string `gorm:"column:user_id;index"`
	Title          string `gorm:"column:title"`
	Description    string `gorm:"column:description"`
	VideoUrl       string `gorm:"column:video_url"`
	CoverUrl       string `gorm:"column:cover_url"`
	TelegramLink   string `gorm:"column:telegram_link"`
	Country        string `gorm:"column:country;index"`
	EventType      string `gorm:"column:event_type;index"`
	Hashtags       string `gorm:"column:hashtags"`
	LikeCount      int64  `gorm:"column:like_count"`
	VisitCount     int64  `gorm:"column:visit_count"`
	TelegramClicks int64  `gorm:"column:telegram_clicks"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (videoPO) TableName() string { return "videos" }

type commentPO struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey;autoIncrement"`
	VideoId   int64  `gorm:"column:video_id;index"`
	UserId    string `gorm:"column:user_id"`
	Content   string `gorm:"column:content"`
	CreatedAt time.Time
}

func (commentPO) TableName() string { return "comments" }

type videoLikePO struct {
	VideoId   int64  `gorm:"column:video_id;primaryKey"`
	UserId    string `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time
}

func (videoLikePO) TableName() string { return "video_likes" }

func toVideoPO(v *model.Video) *videoPO {
	return &videoPO{
		VideoId:        v.VideoId,
		UserId:         v.UserId,
		Title:          v.Title,
		Description:    v.Description,
		VideoUrl:       v.VideoUrl,
		CoverUrl:       v.CoverUrl,
		TelegramLink:   v.TelegramLink,
		Country:        v.Country,
		EventType:      v.EventType,
		Hashtags:       strings.Join(v.Hashtags, ","),
		LikeCount:      v.LikeCount,
		VisitCount:     v.VisitCount,
		TelegramClicks: v.TelegramClicks,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func toVideoModel(po *videoPO) *model.Video {
	var hashtags []string
	if po.Hashtags != "" {
		hashtags = strings.Split(po.Hashtags, ",")
	}
	return &model.Video{
		VideoId:        po.VideoId,
		UserId:         po.UserId,
		Title:          po.Title,
		Description:    po.Description,
		VideoUrl:       po.VideoUrl,
		CoverUrl:       po.CoverUrl,
		TelegramLink:   po.TelegramLink,
		Country:        po.Country,
		EventType:      po.EventType,
		Hashtags:       hashtags,
		LikeCount:      po.LikeCount,
		VisitCount:     po.VisitCount,
		TelegramClicks: po.TelegramClicks,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	}
}

func (s *MysqlStorage) GetUser(ctx context.Context, userId string) (*model.User, error) {
	var po userPO
	if err := s.db.WithContext(ctx).Where("user_id = ?", userId).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.UserNotFoundErr
		}
		return nil, errors.WithMessage(err, "failed to get user")
	}
	return &model.User{
		UserId:          po.UserId,
		Email:           po.Email,
		FirstName:       po.FirstName,
		LastName:        po.LastName,
		ProfileImageUrl: po.ProfileImageUrl,
		TelegramLink:    po.TelegramLink,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}, nil
}

func (s *MysqlStorage) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	po := userPO{
		UserId:          user.UserId,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageUrl: user.ProfileImageUrl,
		TelegramLink:    user.TelegramLink,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing userPO
		err := tx.Where("user_id = ?", user.UserId).First(&existing).Error
		switch {
		case err == nil:
			po.CreatedAt = existing.CreatedAt
			po.UpdatedAt = time.Now()
			return tx.Save(&po).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			po.CreatedAt = now
			po.UpdatedAt = now
			return tx.Create(&po).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to upsert user")
	}
	return s.GetUser(ctx, user.UserId)
}

func (s *MysqlStorage) GetVideos(ctx context.Context, filter *model.VideoFilter) ([]*model.Video, error) {
	query := s.db.WithContext(ctx).Model(&videoPO{})
	if filter != nil {
		if filter.Country != "" {
			query = query.Where("country = ?", filter.Country)
		}
		if filter.EventType != "" {
			query = query.Where("event_type = ?", filter.EventType)
		}
		if filter.UserId != "" {
			query = query.Where("user_id = ?", filter.UserId)
		}
		if len(filter.Hashtags) > 0 {
			clauses := make([]string, 0, len(filter.Hashtags))
			args := make([]interface{}, 0, len(filter.Hashtags))
			for _, tag := range filter.Hashtags {
				clauses = append(clauses, "FIND_IN_SET(?, hashtags) > 0")
				args = append(args, tag)
			}
			query = query.Where(strings.Join(clauses, " OR "), args...)
		}
	}
	query = query.Order("created_at DESC, video_id DESC")
	if filter != nil {
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
	}

	var pos []*videoPO
	if err := query.Find(&pos).Error; err != nil {
		return nil, errors.WithMessage(err, "failed to list videos")
	}
	out := make([]*model.Video, 0, len(pos))
	for _, po := range pos {
		out = append(out, toVideoModel(po))
	}
	return out, nil
}

func (s *MysqlStorage) GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var po videoPO
	if err := s.db.WithContext(ctx).Where("video_id = ?", videoId).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errors.WithMessage(err, "failed to get video")
	}
	return toVideoModel(&po), nil
}

func (s *MysqlStorage) CreateVideo(ctx context.Context, video *model.Video) (*model.Video, error) {
	po := toVideoPO(video)
	po.VideoId = 0
	po.LikeCount = 0
	po.VisitCount = 0
	po.TelegramClicks = 0
	now := time.Now()
	po.CreatedAt = now
	po.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(po).Error; err != nil {
		return nil, errors.WithMessage(err, "failed to create video")
	}
	return toVideoModel(po), nil
}

func (s *MysqlStorage) UpdateVideo(ctx context.Context, videoId int64, patch *model.VideoPatch) (*model.Video, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.VideoUrl != nil {
		updates["video_url"] = *patch.VideoUrl
	}
	if patch.CoverUrl != nil {
		updates["cover_url"] = *patch.CoverUrl
	}
	if patch.TelegramLink != nil {
		updates["telegram_link"] = *patch.TelegramLink
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.EventType != nil {
		updates["event_type"] = *patch.EventType
	}
	if patch.Hashtags != nil {
		updates["hashtags"] = strings.Join(*patch.Hashtags, ",")
	}
	updates["updated_at"] = time.Now()

	result := s.db.WithContext(ctx).Model(&videoPO{}).Where("video_id = ?", videoId).Updates(updates)
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		// Updates with identical values also report zero rows, so
		// distinguish via an existence check.
		if _, err := s.GetVideo(ctx, videoId); err != nil {
			return nil, err
		}
	}
	return s.GetVideo(ctx, videoId)
}

func (s *MysqlStorage) DeleteVideo(ctx context.Context, videoId int64) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("video_id = ?", videoId).Delete(&videoPO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		if err := tx.Where("video_id = ?", videoId).Delete(&commentPO{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoId).Delete(&videoLikePO{}).Error
	})
	if err != nil {
		return false, errors.WithMessage(err, "failed to delete video")
	}
	return removed, nil
}

func (s *MysqlStorage) IncrementViews(ctx context.Context, videoId int64) error {
	if err := s.db.WithContext(ctx).Model(&videoPO{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.WithMessage(err, "failed to increment views")
	}
	return nil
}

func (s *MysqlStorage) IncrementTelegramClicks(ctx context.Context, videoId int64) error {
	if err := s.db.WithContext(ctx).Model(&videoPO{}).Where("video_id = ?", videoId).
		Update("telegram_clicks", gorm.Expr("telegram_clicks + 1")).Error; err != nil {
		return errors.WithMessage(err, "failed to increment telegram clicks")
	}
	return nil
}

func (s *MysqlStorage) ToggleLike(ctx context.Context, videoId int64, userId string) (bool, error) {
	liked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video videoPO
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.VideoNotFoundErr
			}
			return err
		}

		var existing videoLikePO
		err := tx.Where("video_id = ? AND user_id = ?", videoId, userId).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Where("video_id = ? AND user_id = ?", videoId, userId).
				Delete(&videoLikePO{}).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&videoPO{}).Where("video_id = ?", videoId).
				Update("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&videoLikePO{
				VideoId:   videoId,
				UserId:    userId,
				CreatedAt: time.Now(),
			}).Error; err != nil {
				return err
			}
			liked = true
			return tx.Model(&videoPO{}).Where("video_id = ?", videoId).
				Update("like_count", gorm.Expr("like_count + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (s *MysqlStorage) GetUserLikes(ctx context.Context, userId string) ([]int64, error) {
	list := make([]int64, 0)
	if err := s.db.WithContext(ctx).Model(&videoLikePO{}).Where("user_id = ?", userId).
		Order("video_id").Select("video_id").Scan(&list).Error; err != nil {
		return nil, errors.WithMessage(err, "failed to get user likes")
	}
	return list, nil
}

func (s *MysqlStorage) GetVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	var pos []*commentPO
	if err := s.db.WithContext(ctx).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").Find(&pos).Error; err != nil {
		return nil, errors.WithMessage(err, "failed to list comments")
	}
	out := make([]*model.Comment, 0, len(pos))
	for _, po := range pos {
		out = append(out, &model.Comment{
			CommentId: po.CommentId,
			VideoId:   po.VideoId,
			UserId:    po.UserId,
			Content:   po.Content,
			CreatedAt: po.CreatedAt,
		})
	}
	return out, nil
}

func (s *MysqlStorage) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	po := &commentPO{
		VideoId: comment.VideoId,
		UserId:  comment.UserId,
		Content: comment.Content,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&videoPO{}).Where("video_id = ?", comment.VideoId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errno.VideoNotFoundErr
		}
		po.CreatedAt = time.Now()
		return tx.Create(po).Error
	})
	if err != nil {
		return nil, err
	}
	return &model.Comment{
		CommentId: po.CommentId,
		VideoId:   po.VideoId,
		UserId:    po.UserId,
		Content:   po.Content,
		CreatedAt: po.CreatedAt,
	}, nil
}

func (s *MysqlStorage) GetUserVideoStats(ctx context.Context, userId string) (*model.UserVideoStats, error) {
	stats := &model.UserVideoStats{}
	row := struct {
		TotalViews          int64
		TotalLikes          int64
		TotalTelegramClicks int64
		VideoCount          int64
	}{}
	if err := s.db.WithContext(ctx).Model(&videoPO{}).Where("user_id = ?", userId).
		Select("COALESCE(SUM(visit_count),0) AS total_views, COALESCE(SUM(like_count),0) AS total_likes, " +
			"COALESCE(SUM(telegram_clicks),0) AS total_telegram_clicks, COUNT(*) AS video_count").
		Scan(&row).Error; err != nil {
		return nil, errors.WithMessage(err, "failed to aggregate user video stats")
	}
	stats.TotalViews = row.TotalViews
	stats.TotalLikes = row.TotalLikes
	stats.TotalTelegramClicks = row.TotalTelegramClicks
	stats.VideoCount = row.VideoCount
	return stats, nil
}
