package mongo_driver

const (
	DefaultMaxPoolSize    = 10 // 默认连接池最大连接数
	DefaultMinPoolSize    = 5  // 默认连接池最小连接数
	DefaultConnectTimeout = 10 // 默认连接超时时间 单位：秒
)

// MongoDriverConfig mongo 配置
type MongoDriverConfig struct {
	URI            string // 连接串
	Database       string // 数据库名
	MaxPoolSize    uint64 // 连接池最大连接数
	MinPoolSize    uint64 // 连接池最小连接数
	ConnectTimeout int64  // 连接超时时间 单位：秒
}

// normalize 填充默认值
func (c *MongoDriverConfig) normalize() {
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = DefaultMaxPoolSize
	}
	if c.MinPoolSize == 0 {
		c.MinPoolSize = DefaultMinPoolSize
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
}
