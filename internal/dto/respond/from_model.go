package respond

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
)

// NewUserInfoRespond maps a user entity to its public shape.
func NewUserInfoRespond(u *model.UserInfo) UserInfoRespond {
	return UserInfoRespond{
		Uuid:             u.Uuid,
		FullName:         u.FullName,
		Email:            u.Email,
		Bio:              u.Bio,
		ProfilePic:       u.ProfilePic,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
		EducationalPath:  u.EducationalPath,
		Location:         u.Location,
		Gender:           u.Gender,
		IsOnboarded:      u.IsOnboarded,
	}
}

// NewGroupRespond maps a group entity; the caller-relative flags are
// filled by the service.
func NewGroupRespond(g *model.GroupInfo) GroupRespond {
	return GroupRespond{
		Uuid:                 g.Uuid,
		Name:                 g.Name,
		Description:          g.Description,
		CreatorId:            g.CreatorId,
		Privacy:              g.Privacy,
		AllowMemberMessages:  g.AllowMemberMessages,
		AllowMemberVideoCall: g.AllowMemberVideoCall,
		Field:                g.Field,
		FieldType:            g.FieldType,
		Image:                g.Image,
		ChannelId:            g.ChannelID,
		MemberCnt:            g.MemberCnt,
	}
}
