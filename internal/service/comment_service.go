package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/repository"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, userRepo *repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, userRepo: userRepo}
}

// List 论文评论分页，附作者信息与当前用户点赞状态
func (s *CommentService) List(userID, paperID string, page, pageSize int) (*dto.CommentListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	comments, total, err := s.commentRepo.ListByPaper(paperID, page, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	likedByMe, err := s.commentRepo.LikedCommentIDs(userID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentItem, 0, len(comments))
	for _, c := range comments {
		item := &dto.CommentItem{
			ID:        c.ID,
			PaperID:   c.PaperID,
			Content:   c.Content,
			LikeCount: c.LikeCount,
			LikedByMe: likedByMe[c.ID],
			AuthorID:  c.UserID,
			CreatedAt: c.CreatedAt,
		}
		if author, err := s.userRepo.GetByID(c.UserID); err == nil && author != nil {
			item.AuthorNickname = author.Nickname
			item.AuthorAvatar = author.AvatarURL
		}
		items = append(items, item)
	}

	return &dto.CommentListResponse{Comments: items, Total: total}, nil
}

// Create 发表评论
func (s *CommentService) Create(userID, paperID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(http.StatusBadRequest, "invalid_payload")
	}

	comment := &model.Comment{
		ID:      uuid.NewString(),
		PaperID: paperID,
		UserID:  userID,
		Content: content,
		Status:  model.CommentStatusVisible,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike 评论点赞切换
func (s *CommentService) ToggleLike(userID, commentID string) (*dto.CommentLikeResponse, error) {
	liked, likeCount, err := s.commentRepo.ToggleLike(userID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(http.StatusNotFound, "comment_not_found")
		}
		return nil, err
	}
	return &dto.CommentLikeResponse{Liked: liked, LikeCount: likeCount}, nil
}
