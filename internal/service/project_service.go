package service

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/repository"
)

// 首次访问项目页时为用户播种的默认会议
var defaultConferences = []model.ProjectDeadline{
	{Abbr: "CVPR", FullName: "IEEE/CVF Conference on Computer Vision and Pattern Recognition", Location: "Denver, USA", Deadline: "2026-11-14", ColorTheme: "green"},
	{Abbr: "NeurIPS", FullName: "Conference on Neural Information Processing Systems", Location: "San Diego, USA", Deadline: "2026-05-15", ColorTheme: "purple"},
	{Abbr: "CHI", FullName: "ACM Conference on Human Factors in Computing Systems", Location: "Barcelona, Spain", Deadline: "2026-09-11", ColorTheme: "yellow"},
	{Abbr: "ICLR", FullName: "International Conference on Learning Representations", Location: "Rio de Janeiro, Brazil", Deadline: "2026-09-24", ColorTheme: "blue"},
	{Abbr: "AAAI", FullName: "AAAI Conference on Artificial Intelligence", Location: "Singapore", Deadline: "2026-07-25", ColorTheme: "orange"},
}

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	userRepo    *repository.UserRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository, userRepo *repository.UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

// List 用户的会议截止日列表；首次访问时播种默认会议
func (s *ProjectService) List(userID string) ([]*model.ProjectDeadline, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(http.StatusNotFound, "user_not_found")
	}

	if !user.ProjectDefaultsInitialized {
		if err := s.seedDefaults(userID); err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdateFields(userID,
			map[string]interface{}{"project_defaults_initialized": true}); err != nil {
			return nil, err
		}
	}

	return s.projectRepo.ListByUser(userID)
}

// seedDefaults 仅在用户首次访问时执行一次
func (s *ProjectService) seedDefaults(userID string) error {
	seeds := make([]*model.ProjectDeadline, 0, len(defaultConferences))
	for _, conf := range defaultConferences {
		seed := conf
		seed.ID = uuid.NewString()
		seed.UserID = userID
		seeds = append(seeds, &seed)
	}
	return s.projectRepo.CreateBatch(seeds)
}

// Create 新增会议截止日
func (s *ProjectService) Create(userID string, req *dto.CreateConferenceRequest) (*model.ProjectDeadline, error) {
	theme := req.ColorTheme
	if theme == "" {
		theme = "green"
	}
	if !model.IsValidColorTheme(theme) {
		return nil, apperr.New(http.StatusBadRequest, "invalid_color_theme")
	}

	progress := 0
	if req.Progress != nil {
		progress = clampProgress(*req.Progress)
	}

	deadline := &model.ProjectDeadline{
		ID:         uuid.NewString(),
		UserID:     userID,
		Abbr:       req.Abbr,
		FullName:   req.FullName,
		Location:   req.Location,
		StartDate:  req.StartDate,
		Deadline:   req.Deadline,
		Progress:   progress,
		Note:       req.Note,
		ColorTheme: theme,
	}
	if err := s.projectRepo.Create(deadline); err != nil {
		return nil, apperr.NewWithDetail(http.StatusConflict, "conference_already_exists", err.Error())
	}
	return deadline, nil
}

// Update 更新会议截止日，nil 字段不动
func (s *ProjectService) Update(userID, id string, req *dto.UpdateConferenceRequest) (*model.ProjectDeadline, error) {
	deadline, err := s.projectRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, apperr.New(http.StatusNotFound, "conference_not_found")
	}

	if req.Abbr != nil {
		deadline.Abbr = *req.Abbr
	}
	if req.FullName != nil {
		deadline.FullName = *req.FullName
	}
	if req.Location != nil {
		deadline.Location = *req.Location
	}
	if req.StartDate != nil {
		deadline.StartDate = *req.StartDate
	}
	if req.Deadline != nil {
		deadline.Deadline = *req.Deadline
	}
	if req.Progress != nil {
		deadline.Progress = clampProgress(*req.Progress)
	}
	if req.Note != nil {
		deadline.Note = *req.Note
	}
	if req.ColorTheme != nil {
		if !model.IsValidColorTheme(*req.ColorTheme) {
			return nil, apperr.New(http.StatusBadRequest, "invalid_color_theme")
		}
		deadline.ColorTheme = *req.ColorTheme
	}

	if err := s.projectRepo.Update(deadline); err != nil {
		return nil, err
	}
	return deadline, nil
}

// Delete 删除会议截止日
func (s *ProjectService) Delete(userID, id string) error {
	deleted, err := s.projectRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.New(http.StatusNotFound, "conference_not_found")
	}
	return nil
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
