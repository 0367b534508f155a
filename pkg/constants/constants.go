package constants

import "time"

const (
	CACHE_WORKER_NUM    = 4   // background cache workers
	CACHE_CHANNEL_SIZE  = 256 // cache task channel size
	NOTIFICATION_LIMIT  = 50  // max notifications returned per listing
	GROUP_NAME_MIN_LEN  = 3   // minimum group name length
	PASSWORD_MIN_LEN    = 6   // minimum password length
	RECOMMEND_PAGE_SIZE = 10  // default recommended-users page size

	INVITATION_TTL = 7 * 24 * time.Hour // invitations expire after 7 days
	JWT_COOKIE_TTL = 7 * 24 * time.Hour // auth cookie lifetime
)
