package statshub

const (
	DefaultWsPath            = "/stats"
	DefaultListenAddr        = ":30201"
	DefaultFrequency         = 1000  // 广播间隔 毫秒
	DefaultHeartbeat         = 5000  // 心跳间隔 毫秒
	DefaultMaxHeartbeat      = 15000 // 心跳超时 毫秒
	DefaultWriteTimeout      = 1000  // 写超时 毫秒
	DefaultSendQueueSize     = 64    // 会话发送队列大小
	DefaultMaxSessions       = 256   // 最大会话数量
	DefaultSnapshotCacheSize = 128   // 快照缓存容量
	DefaultDispatchWorkers   = 4     // 指令分发工人数量
	DefaultDispatchQueueSize = 64    // 指令分发队列大小
	DefaultArchiveTasks      = 16    // 归档在途任务上限
)

const (
	ActionSubscribe   = "subscribe"   // 订阅目标
	ActionUnsubscribe = "unsubscribe" // 取消订阅
	ActionList        = "list"        // 列出全部目标
	ActionEncoding    = "encoding"    // 设置会话文本编码 Target 为编码名
)

// Command 客户端指令帧
type Command struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

// Ack 指令应答帧
type Ack struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// TargetList 目标列表应答帧
type TargetList struct {
	Action  string   `json:"action"`
	Targets []string `json:"targets"`
}

// Snapshot 统计快照
// 快照基于当前元素集即时计算 HasStats 为 false 表示元素不足
type Snapshot struct {
	Target    string `json:"target" bson:"target"`
	Size      int    `json:"size" bson:"size"`
	Capacity  int    `json:"capacity" bson:"capacity"`
	Shortest  int64  `json:"shortest" bson:"shortest"`
	Longest   int64  `json:"longest" bson:"longest"`
	HasStats  bool   `json:"hasStats" bson:"hasStats"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
