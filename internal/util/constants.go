package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
)

// PassingScore 测试通过线（百分比）
const PassingScore = 70
