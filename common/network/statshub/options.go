package statshub

import "go_collections/common/options"

// WithListenAddr 设置监听地址Options
func WithListenAddr(addr string) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.listenAddr = addr
	})
}

// WithWsPath 设置 websocket 路径Options
func WithWsPath(path string) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.wsPath = path
	})
}

// WithFrequency 设置广播间隔Options 单位毫秒
func WithFrequency(frequency int64) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.frequency = frequency
	})
}

// WithHeartbeat 设置心跳间隔Options 单位毫秒
func WithHeartbeat(heartbeat int64) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.heartbeat = heartbeat
	})
}

// WithMaxHeartbeat 设置心跳超时Options 单位毫秒
func WithMaxHeartbeat(maxHeartbeat int64) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.maxHeartbeat = maxHeartbeat
	})
}

// WithWriteTimeout 设置写超时Options 单位毫秒
func WithWriteTimeout(writeTimeout int64) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.writeTimeout = writeTimeout
	})
}

// WithSendQueueSize 设置会话发送队列大小Options
func WithSendQueueSize(size int) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.sendQueueSize = size
	})
}

// WithMaxSessions 设置最大会话数量Options
func WithMaxSessions(maxSessions int) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.maxSessions = maxSessions
	})
}

// WithSnapshotCacheSize 设置快照缓存容量Options
func WithSnapshotCacheSize(size int) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.cacheSize = size
	})
}

// WithProfile 设置是否开启性能分析端点Options
func WithProfile(enable bool) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.enableProfile = enable
	})
}

// WithArchiveStore 设置快照归档存储Options
func WithArchiveStore(store ArchiveStore) options.Option[Server] {
	return options.WrapperOptions[Server](func(s *Server) {
		s.archive = store
	})
}
