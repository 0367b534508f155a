package respond

// GroupRespond is one group with flags computed relative to the caller.
// IsMessageBanned is only filled on the detail endpoint.
type GroupRespond struct {
	Uuid                 string `json:"uuid"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	CreatorId            string `json:"creatorId"`
	Privacy              string `json:"privacy"`
	AllowMemberMessages  bool   `json:"allowMemberMessages"`
	AllowMemberVideoCall bool   `json:"allowMemberVideoCall"`
	Field                string `json:"field"`
	FieldType            string `json:"fieldType"`
	Image                string `json:"image"`
	ChannelId            string `json:"channelId"`
	MemberCnt            int    `json:"memberCnt"`
	IsMember             bool   `json:"isMember"`
	IsAdmin              bool   `json:"isAdmin"`
	IsCreator            bool   `json:"isCreator"`
	IsMessageBanned      bool   `json:"isMessageBanned,omitempty"`
}
