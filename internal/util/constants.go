package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

var AllowedAvatarExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}
