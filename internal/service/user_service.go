package service

import (
	"net/http"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/repository"
)

// AvatarUploader 头像存储接口（生产为OSS）
type AvatarUploader interface {
	UploadAvatar(userID string, data []byte, ext string) (string, error)
}

type UserService struct {
	userRepo        *repository.UserRepository
	paperRepo       *repository.PaperRepository
	interactionRepo *repository.InteractionRepository
	commentRepo     *repository.CommentRepository
	projectRepo     *repository.ProjectRepository
	missionRepo     *repository.MissionRepository
	uploader        AvatarUploader
}

func NewUserService(
	userRepo *repository.UserRepository,
	paperRepo *repository.PaperRepository,
	interactionRepo *repository.InteractionRepository,
	commentRepo *repository.CommentRepository,
	projectRepo *repository.ProjectRepository,
	missionRepo *repository.MissionRepository,
	uploader AvatarUploader,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		paperRepo:       paperRepo,
		interactionRepo: interactionRepo,
		commentRepo:     commentRepo,
		projectRepo:     projectRepo,
		missionRepo:     missionRepo,
		uploader:        uploader,
	}
}

// GetProfile 获取当前用户资料
func (s *UserService) GetProfile(userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(http.StatusNotFound, "user_not_found")
	}
	return user, nil
}

// UpdateProfile 更新资料，nil 字段不动
func (s *UserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*model.User, error) {
	fields := make(map[string]interface{})
	if req.Nickname != nil {
		fields["nickname"] = *req.Nickname
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.FieldOfStudy != nil {
		fields["field_of_study"] = *req.FieldOfStudy
	}
	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

// UploadAvatar 上传头像并更新用户资料，返回新URL
func (s *UserService) UploadAvatar(userID string, data []byte, ext string) (string, error) {
	if s.uploader == nil {
		return "", apperr.New(http.StatusServiceUnavailable, "avatar_storage_unavailable")
	}
	url, err := s.uploader.UploadAvatar(userID, data, ext)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{"avatar_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

// LikedPapers 点赞论文分页，保持点赞时间倒序
func (s *UserService) LikedPapers(userID string, page, pageSize int) (*dto.LikedPapersResponse, error) {
	ids, total, err := s.interactionRepo.GetUserLikedPaperIDs(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	papers, err := s.paperRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Paper, len(papers))
	for _, p := range papers {
		byID[p.ID] = p
	}
	ordered := make([]*model.Paper, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return &dto.LikedPapersResponse{
		Papers:   ordered,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Dashboard 个人主页统计
func (s *UserService) Dashboard(userID string) (*dto.DashboardResponse, error) {
	readPapers, err := s.interactionRepo.CountActionsByType(userID, model.PaperActionRead)
	if err != nil {
		return nil, err
	}
	markedPapers, err := s.interactionRepo.CountActionsByType(userID, model.PaperActionMark)
	if err != nil {
		return nil, err
	}
	likedPapers, err := s.interactionRepo.CountLikes(userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	missions, err := s.missionRepo.CountMissions(userID)
	if err != nil {
		return nil, err
	}
	doneTasks, err := s.missionRepo.CountTasks(userID, true)
	if err != nil {
		return nil, err
	}
	pendingTasks, err := s.missionRepo.CountTasks(userID, false)
	if err != nil {
		return nil, err
	}
	badges, err := s.missionRepo.CountBadges(userID)
	if err != nil {
		return nil, err
	}
	conferences, err := s.projectRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		ReadPapers:   readPapers,
		MarkedPapers: markedPapers,
		LikedPapers:  likedPapers,
		Comments:     comments,
		Missions:     missions,
		DoneTasks:    doneTasks,
		PendingTasks: pendingTasks,
		Badges:       badges,
		Conferences:  conferences,
	}, nil
}
