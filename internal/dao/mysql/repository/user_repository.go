package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user uuid=%s", uuid)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user email=%s", email)
	}
	return &user, nil
}

func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var users []model.UserInfo
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "find users by uuids")
	}
	return users, nil
}

// RecommendedFilter narrows the recommended-user query. Empty string
// fields are ignored.
type RecommendedFilter struct {
	NativeLanguage   string
	LearningLanguage string
	Track            string
	Query            string
	Offset           int
	Limit            int
}

func (r *userRepository) FindRecommended(excludeUuids []string, filter RecommendedFilter) ([]model.UserInfo, error) {
	var users []model.UserInfo
	query := r.db.Where("is_onboarded = ?", true)
	if len(excludeUuids) > 0 {
		query = query.Where("uuid NOT IN ?", excludeUuids)
	}
	if filter.NativeLanguage != "" {
		query = query.Where("native_language = ?", filter.NativeLanguage)
	}
	if filter.LearningLanguage != "" {
		query = query.Where("learning_language = ?", filter.LearningLanguage)
	}
	if filter.Track != "" {
		query = query.Where("educational_path = ?", filter.Track)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	if err := query.Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "find recommended users")
	}
	return users, nil
}

func (r *userRepository) Search(query string, excludeUuid string) ([]model.UserInfo, error) {
	var users []model.UserInfo
	pattern := "%" + query + "%"
	err := r.db.
		Where("uuid != ?", excludeUuid).
		Where("full_name LIKE ? OR email LIKE ?", pattern, pattern).
		Find(&users).Error
	if err != nil {
		return nil, wrapDBError(err, "search users")
	}
	return users, nil
}

func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) Update(user *model.UserInfo) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "update user")
	}
	return nil
}
