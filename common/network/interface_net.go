package network

// ISession 推送会话
type ISession interface {
	// SessionID 获取会话ID
	SessionID() string
	// RemoteAddrString 获取远程地址字符串
	RemoteAddrString() string
	// Send 同步发送一帧数据
	Send(frame []byte) error
	// SendToQueue 发送一帧数据到发送队列
	SendToQueue(frame []byte) error
	// Close 关闭会话
	Close() error
	// IsAlive 判断会话是否存活
	IsAlive() bool
}

// IHub 推送服务
type IHub interface {
	// Serve 启动服务
	Serve() error
	// Close 关闭服务
	Close() error
	// SessionCount 当前会话数量
	SessionCount() int
}
