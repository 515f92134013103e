package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) FindByName(ctx context.Context, name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// RolesForUser reads group membership and the superuser flag in one pass.
// Called once per request by the auth middleware.
func (r *GroupRepository) RolesForUser(ctx context.Context, userID uint) (entity.RoleSet, error) {
	var rs entity.RoleSet

	var names []string
	err := r.DB.WithContext(ctx).Table("groups").
		Joins("JOIN user_groups ug ON ug.group_id = groups.id").
		Where("ug.user_id = ?", userID).
		Pluck("groups.name", &names).Error
	if err != nil {
		return rs, err
	}
	for _, n := range names {
		switch n {
		case entity.GroupManager:
			rs.Manager = true
		case entity.GroupDeliveryCrew:
			rs.DeliveryCrew = true
		}
	}

	var u entity.User
	if err := r.DB.WithContext(ctx).Select("is_superuser").First(&u, userID).Error; err != nil {
		return rs, err
	}
	rs.Superuser = u.IsSuperuser

	return rs, nil
}

func (r *GroupRepository) ListUsers(ctx context.Context, groupID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.WithContext(ctx).Table("users").
		Select("users.*").
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ?", groupID).
		Find(&users).Error
	return users, err
}

func (r *GroupRepository) AddUser(ctx context.Context, group *entity.Group, user *entity.User) error {
	return r.DB.WithContext(ctx).Model(group).Association("Users").Append(user)
}

func (r *GroupRepository) RemoveUser(ctx context.Context, group *entity.Group, user *entity.User) error {
	return r.DB.WithContext(ctx).Model(group).Association("Users").Delete(user)
}
