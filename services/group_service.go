package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

type GroupService struct {
	DB        *gorm.DB
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(db *gorm.DB, gr *repository.GroupRepository, ur *repository.UserRepository) *GroupService {
	return &GroupService{DB: db, GroupRepo: gr, UserRepo: ur}
}

// MemberOut mirrors what group listings expose about a user.
type MemberOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *GroupService) ListMembers(ctx context.Context, groupName string) ([]MemberOut, error) {
	group, err := s.GroupRepo.FindByName(ctx, groupName)
	if err != nil {
		// groups are provisioned at deployment; a missing one is a server
		// fault, never a client 404
		return nil, apperr.Internal(err)
	}

	users, err := s.GroupRepo.ListUsers(ctx, group.ID)
	if err != nil {
		return nil, wrapStore(err, "group not found")
	}

	out := make([]MemberOut, 0, len(users))
	for _, u := range users {
		out = append(out, MemberOut{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out, nil
}

func (s *GroupService) AddMember(ctx context.Context, groupName, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperr.Validation("username is required")
	}

	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return wrapStore(err, "user not found")
	}

	group, err := s.GroupRepo.FindByName(ctx, groupName)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := s.GroupRepo.AddUser(ctx, group, user); err != nil {
		return wrapStore(err, "group not found")
	}
	return nil
}

func (s *GroupService) RemoveMember(ctx context.Context, groupName string, userID uint) error {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return wrapStore(err, "user not found")
	}

	group, err := s.GroupRepo.FindByName(ctx, groupName)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := s.GroupRepo.RemoveUser(ctx, group, user); err != nil {
		return wrapStore(err, "group not found")
	}
	return nil
}
