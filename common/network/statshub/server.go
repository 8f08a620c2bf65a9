package statshub

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"go_collections/common/container"
	"go_collections/common/network"
	"go_collections/common/options"
	"go_collections/common/pool/gpool"
	"go_collections/common/profile"
	"go_collections/common/timer"
)

var (
	// 断言 Server 实现了 network.IHub 和 http.Handler
	_ network.IHub = (*Server)(nil)
	_ http.Handler = (*Server)(nil)
)

const (
	hubStatusOpen  = 0 // 服务状态 打开
	hubStatusClose = 1 // 服务状态 关闭
)

// ArchiveStore 快照归档存储
type ArchiveStore interface {
	Insert(ctx context.Context, snapshot Snapshot) error
}

// Server 统计推送服务
// 周期性对注册表内所有目标计算快照 推送给订阅的会话
type Server struct {
	listenAddr    string // 监听地址
	wsPath        string // websocket 路径
	frequency     int64  // 广播间隔 毫秒
	heartbeat     int64  // 心跳间隔 毫秒
	maxHeartbeat  int64  // 心跳超时 毫秒
	writeTimeout  int64  // 写超时 毫秒
	sendQueueSize int    // 会话发送队列大小
	maxSessions   int    // 最大会话数量
	cacheSize     int    // 快照缓存容量
	enableProfile bool   // 是否开启性能分析端点

	registry *Registry    // 跨度容器注册表
	archive  ArchiveStore // 快照归档 可为空

	status    int32                               // 服务状态
	sessions  map[string]*Session                 // 会话集合
	sessLock  sync.RWMutex                        // 会话锁
	upgrader  websocket.Upgrader                  // websocket 升级器
	httpSrv   *http.Server                        // http 服务
	tm        *timer.TimerManager                 // 定时器管理器 仅在 runLoop 协程内访问
	pool      *gpool.Pool                         // 指令分发协程池 按会话路由保证有序
	runner    *gpool.TaskRunner                   // 归档任务执行器
	cache     *container.LruCache[string, []byte] // 编码后快照缓存
	stats     *network.TrafficStatistics          // 流量统计
	ctx       context.Context                     // 上下文
	ctxCancel context.CancelFunc                  // 上下文取消
	wg        sync.WaitGroup                      // 等待组
}

// NewServer 创建统计推送服务
func NewServer(registry *Registry, opts ...options.Option[Server]) *Server {
	server := &Server{
		listenAddr:    DefaultListenAddr,
		wsPath:        DefaultWsPath,
		frequency:     DefaultFrequency,
		heartbeat:     DefaultHeartbeat,
		maxHeartbeat:  DefaultMaxHeartbeat,
		writeTimeout:  DefaultWriteTimeout,
		sendQueueSize: DefaultSendQueueSize,
		maxSessions:   DefaultMaxSessions,
		cacheSize:     DefaultSnapshotCacheSize,
		registry:      registry,
		status:        hubStatusOpen,
		sessions:      make(map[string]*Session),
	}
	options.Apply(server, opts...)

	server.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// 推送服务不校验来源
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	server.tm = timer.NewTimerManager(timer.DefaultTimerQueueSize)
	server.pool = gpool.NewPool(DefaultDispatchWorkers, DefaultDispatchQueueSize)
	server.runner = gpool.NewTaskRunner(DefaultArchiveTasks, nil)
	server.cache = container.NewLruCache[string, []byte](server.cacheSize)
	server.stats = network.NewTrafficStatistics()
	server.ctx, server.ctxCancel = context.WithCancel(context.Background())

	return server
}

// Serve 启动服务
func (s *Server) Serve() error {
	if atomic.LoadInt32(&s.status) == hubStatusClose {
		return ErrHubClosed
	}
	mux := http.NewServeMux()
	mux.Handle(s.wsPath, s)
	if s.enableProfile {
		profile.NewProfileManager().Register(mux)
	}
	s.httpSrv = &http.Server{
		Addr:    s.listenAddr,
		Handler: mux,
	}

	now := time.Now().UnixMilli()
	s.tm.AddTimer(s.onBroadcastTimer, now+s.frequency, s.frequency)
	s.tm.AddTimer(s.onReapTimer, now+s.maxHeartbeat, s.maxHeartbeat)

	s.wg.Add(1)
	go s.runLoop()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		slog.Info("[Server] serve starting", "addr", s.listenAddr, "path", s.wsPath)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Server] serve listen failed", "addr", s.listenAddr, "err", err)
		}
	}()

	return nil
}

// ServeHTTP 处理 websocket 升级请求
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if atomic.LoadInt32(&s.status) == hubStatusClose {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	rwc, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("[Server] upgrade failed", "remoteAddr", r.RemoteAddr, "err", err)
		return
	}
	session := newSession(s, rwc)
	if err = s.addSession(session); err != nil {
		slog.Warn("[Server] reject session", "remoteAddr", r.RemoteAddr, "err", err)
		_ = rwc.Close()
		return
	}
	session.start()
	slog.Info("[Server] session connected", "sessionID", session.SessionID(), "remoteAddr", session.RemoteAddrString())
}

// Close 关闭服务 停止广播并关闭所有会话
func (s *Server) Close() error {
	if !atomic.CompareAndSwapInt32(&s.status, hubStatusOpen, hubStatusClose) {
		// 已经关闭了
		return nil
	}
	slog.Info("[Server] Close starting")
	s.ctxCancel()

	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] Close shutdown http failed", "err", err)
		}
	}

	sessions := s.allSessions()
	for _, session := range sessions {
		_ = session.Close()
	}
	// 等读写泵退出 保证没有指令还在往协程池里投递
	for _, session := range sessions {
		session.wait()
	}

	s.wg.Wait()
	s.pool.Close()
	s.runner.Close()
	slog.Info("[Server] Close success")
	return nil
}

// SessionCount 当前会话数量
func (s *Server) SessionCount() int {
	s.sessLock.RLock()
	defer s.sessLock.RUnlock()

	return len(s.sessions)
}

// Stats 获取流量统计
func (s *Server) Stats() *network.TrafficStatistics {
	return s.stats
}

// Broadcast 对注册表内全部目标广播一次统计快照
// 周期广播由定时器触发 也可以主动调用
func (s *Server) Broadcast() {
	snapshots := s.registry.Snapshots()
	for _, snapshot := range snapshots {
		frame, err := s.encodeSnapshot(snapshot)
		if err != nil {
			slog.Error("[Server] broadcast encode snapshot failed", "target", snapshot.Target, "err", err)
			continue
		}
		s.publish(snapshot.Target, frame)
		s.archiveSnapshot(snapshot)
	}
}

// runLoop 主循环 驱动定时器
func (s *Server) runLoop() {
	defer s.wg.Done()

	interval := min(s.frequency, s.heartbeat)
	if interval <= 0 {
		interval = DefaultFrequency
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tm.Run(time.Now().UnixMilli(), 0)
		case <-s.ctx.Done():
			return
		}
	}
}

// onBroadcastTimer 广播定时器回调
func (s *Server) onBroadcastTimer(nowTm int64) {
	s.Broadcast()
}

// onReapTimer 会话回收定时器回调 清理心跳超时的会话
func (s *Server) onReapTimer(nowTm int64) {
	for _, session := range s.allSessions() {
		if session.IsAlive() {
			continue
		}
		slog.Warn("[Server] reap dead session", "sessionID", session.SessionID())
		_ = session.Close()
	}
}

// dispatchCommand 分发指令 同一会话的指令路由到同一个工人
func (s *Server) dispatchCommand(session *Session, command Command) {
	s.pool.Submit(gpool.Job{
		Key: sessionKey(session.SessionID()),
		Ctx: s.ctx,
		Handler: func(ctx context.Context) error {
			return s.handleCommand(session, command)
		},
	})
}

// handleCommand 处理单条指令
func (s *Server) handleCommand(session *Session, command Command) error {
	switch command.Action {
	case ActionSubscribe:
		if !s.registry.Exist(command.Target) {
			return s.sendAck(session, command, ErrTargetNotFound)
		}
		session.subscribe(command.Target)
		return s.sendAck(session, command, nil)
	case ActionUnsubscribe:
		session.unsubscribe(command.Target)
		return s.sendAck(session, command, nil)
	case ActionList:
		reply := TargetList{
			Action:  ActionList,
			Targets: s.registry.Names(),
		}
		frame, err := json.Marshal(reply)
		if err != nil {
			return err
		}
		return session.SendToQueue(frame)
	case ActionEncoding:
		if err := session.SetEncoding(command.Target); err != nil {
			return s.sendAck(session, command, err)
		}
		return s.sendAck(session, command, nil)
	default:
		return s.sendAck(session, command, ErrInvalidAction)
	}
}

// sendAck 发送指令应答
func (s *Server) sendAck(session *Session, command Command, ackErr error) error {
	ack := Ack{
		Action: command.Action,
		Target: command.Target,
		OK:     ackErr == nil,
	}
	if ackErr != nil {
		ack.Error = ackErr.Error()
	}
	frame, err := json.Marshal(ack)
	if err != nil {
		return err
	}
	return session.SendToQueue(frame)
}

// encodeSnapshot 编码快照帧
// 同一目标的帧在一个广播周期内复用缓存
func (s *Server) encodeSnapshot(snapshot Snapshot) ([]byte, error) {
	if frame, ok := s.cache.Get(snapshot.Target); ok {
		return frame, nil
	}
	frame, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	expireAt := time.Now().Add(time.Duration(s.frequency) * time.Millisecond).UnixNano()
	s.cache.Put(snapshot.Target, frame, expireAt)
	return frame, nil
}

// publish 把帧推给订阅了目标的会话
func (s *Server) publish(target string, frame []byte) {
	s.sessLock.RLock()
	defer s.sessLock.RUnlock()

	for _, session := range s.sessions {
		if !session.isSubscribed(target) {
			continue
		}
		if err := session.SendToQueue(frame); err != nil {
			slog.Warn("[Server] publish drop frame", "sessionID", session.SessionID(), "target", target, "err", err)
		}
	}
}

// archiveSnapshot 异步归档快照
func (s *Server) archiveSnapshot(snapshot Snapshot) {
	if s.archive == nil {
		return
	}
	task := gpool.Task{
		Ctx: s.ctx,
		TaskFunc: func(ctx context.Context) {
			if err := s.archive.Insert(ctx, snapshot); err != nil {
				slog.Error("[Server] archive snapshot failed", "target", snapshot.Target, "err", err)
			}
		},
	}
	if err := s.runner.SubmitImmediately(task); err != nil {
		slog.Warn("[Server] archive snapshot busy", "target", snapshot.Target, "err", err)
	}
}

// addSession 添加会话
func (s *Server) addSession(session *Session) error {
	s.sessLock.Lock()
	defer s.sessLock.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return ErrTooManySessions
	}
	s.sessions[session.SessionID()] = session
	return nil
}

// removeSession 移除会话
func (s *Server) removeSession(session *Session) {
	s.sessLock.Lock()
	defer s.sessLock.Unlock()

	delete(s.sessions, session.SessionID())
}

// allSessions 获取会话列表拷贝
func (s *Server) allSessions() []*Session {
	s.sessLock.RLock()
	defer s.sessLock.RUnlock()

	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}

// sessionKey 会话路由键
func sessionKey(sessionID string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int64(h.Sum32())
}
