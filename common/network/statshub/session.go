package statshub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"go_collections/common/container"
	"go_collections/common/encode_utils"
	"go_collections/common/network"
)

var (
	// 断言 Session 实现了 network.ISession
	_ network.ISession = (*Session)(nil)
)

const (
	sessionStatusOpen  = 0 // 会话状态 打开
	sessionStatusClose = 1 // 会话状态 关闭
)

// Session websocket 会话
type Session struct {
	id         string                 // 会话ID
	rwc        *websocket.Conn        // 原始连接
	hub        *Server                // 所属服务
	status     int32                  // 会话状态
	sendChan   chan []byte            // 等待发送帧队列
	subscribed *container.Set[string] // 已订阅目标
	subLock    sync.RWMutex           // 订阅锁
	encoding   string                 // 出站文本编码 空为 UTF-8
	lastActive time.Time              // 最后活动时间
	ctx        context.Context        // 上下文
	ctxCancel  context.CancelFunc     // 上下文取消
	closeOnce  sync.Once              // 关闭保护
	lock       sync.Mutex             // 写锁 同时保护 encoding/lastActive
	wg         sync.WaitGroup         // 等待组
}

// newSession 创建会话
func newSession(hub *Server, rwc *websocket.Conn) *Session {
	sess := &Session{
		id:         uuid.NewString(),
		rwc:        rwc,
		hub:        hub,
		status:     sessionStatusOpen,
		sendChan:   make(chan []byte, hub.sendQueueSize),
		subscribed: container.NewSet[string](),
		lastActive: time.Now(),
	}
	sess.ctx, sess.ctxCancel = context.WithCancel(hub.ctx)
	return sess
}

// start 启动读写泵
func (s *Session) start() {
	s.wg.Add(2)
	go s.readPump()
	go s.writePump()
}

// SessionID 获取会话ID
func (s *Session) SessionID() string {
	return s.id
}

// RemoteAddrString 获取远程地址字符串
func (s *Session) RemoteAddrString() string {
	return s.rwc.RemoteAddr().String()
}

// IsAlive 判断会话是否存活
func (s *Session) IsAlive() bool {
	if s.isClosed() {
		return false
	}
	s.lock.Lock()
	lastActive := s.lastActive
	s.lock.Unlock()
	return time.Since(lastActive) <= time.Duration(s.hub.maxHeartbeat)*time.Millisecond
}

// Send 同步发送一帧数据
func (s *Session) Send(frame []byte) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	return s.write(frame)
}

// SendToQueue 发送一帧数据到发送队列
// 队列已满返回 ErrSendQueueFull 不阻塞广播
func (s *Session) SendToQueue(frame []byte) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	select {
	case s.sendChan <- frame:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close 关闭会话
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		atomic.StoreInt32(&s.status, sessionStatusClose)
		s.ctxCancel()
		if err := s.rwc.Close(); err != nil {
			slog.Debug("[Session] close rwc conn failed", "sessionID", s.id, "err", err)
		}
		s.hub.removeSession(s)
		slog.Info("[Session] closed", "sessionID", s.id)
	})
	return nil
}

// SetEncoding 设置出站文本编码
func (s *Session) SetEncoding(encodingStr string) error {
	if encodingStr != "" && encode_utils.NewEncoder(encodingStr) == nil {
		return encode_utils.ErrUnrecognizedEncoding
	}
	s.lock.Lock()
	s.encoding = encodingStr
	s.lock.Unlock()
	return nil
}

// subscribe 订阅目标
func (s *Session) subscribe(target string) {
	s.subLock.Lock()
	defer s.subLock.Unlock()

	s.subscribed.Add(target)
}

// unsubscribe 取消订阅
func (s *Session) unsubscribe(target string) {
	s.subLock.Lock()
	defer s.subLock.Unlock()

	s.subscribed.Remove(target)
}

// isSubscribed 判断是否订阅了目标
func (s *Session) isSubscribed(target string) bool {
	s.subLock.RLock()
	defer s.subLock.RUnlock()

	return s.subscribed.Contains(target)
}

// isClosed 判断会话是否已关闭
func (s *Session) isClosed() bool {
	return atomic.LoadInt32(&s.status) == sessionStatusClose
}

// wait 等待读写泵退出
func (s *Session) wait() {
	s.wg.Wait()
}

// touch 更新最后活动时间
func (s *Session) touch() {
	s.lock.Lock()
	s.lastActive = time.Now()
	s.lock.Unlock()
}

// write 写一帧数据 必要时做出站编码转换
func (s *Session) write(frame []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	payload := frame
	if s.encoding != "" {
		text, err := encode_utils.EncodeString(s.encoding, string(frame))
		if err != nil {
			slog.Error("[Session] write encode frame failed", "sessionID", s.id, "encoding", s.encoding, "err", err)
			return err
		}
		payload = []byte(text)
	}
	if s.hub.writeTimeout > 0 {
		_ = s.rwc.SetWriteDeadline(time.Now().Add(time.Duration(s.hub.writeTimeout) * time.Millisecond))
	}
	if err := s.rwc.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}
	if s.hub.writeTimeout > 0 {
		_ = s.rwc.SetWriteDeadline(time.Time{})
	}
	s.hub.stats.IncrWrite(uint32(len(payload)))
	return nil
}

// readPump 读泵 解析客户端指令帧并交给服务分发
func (s *Session) readPump() {
	defer s.wg.Done()
	defer func() {
		_ = s.Close()
	}()

	maxHeartbeat := time.Duration(s.hub.maxHeartbeat) * time.Millisecond
	_ = s.rwc.SetReadDeadline(time.Now().Add(maxHeartbeat))
	s.rwc.SetPongHandler(func(string) error {
		s.touch()
		return s.rwc.SetReadDeadline(time.Now().Add(maxHeartbeat))
	})

	for {
		_, data, err := s.rwc.ReadMessage()
		if err != nil {
			slog.Debug("[Session] read pump exit", "sessionID", s.id, "err", err)
			return
		}
		s.touch()
		_ = s.rwc.SetReadDeadline(time.Now().Add(maxHeartbeat))
		s.hub.stats.IncrRead(uint32(len(data)))

		command := Command{}
		if err = json.Unmarshal(data, &command); err != nil {
			slog.Warn("[Session] read pump invalid command frame", "sessionID", s.id, "err", err)
			_ = s.hub.sendAck(s, command, ErrInvalidAction)
			continue
		}
		s.hub.dispatchCommand(s, command)
	}
}

// writePump 写泵 发送队列帧和心跳
func (s *Session) writePump() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Duration(s.hub.heartbeat) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.sendChan:
			if err := s.write(frame); err != nil {
				slog.Warn("[Session] write pump write error", "sessionID", s.id, "err", err)
				_ = s.Close()
				return
			}
		case <-ticker.C:
			s.lock.Lock()
			err := s.rwc.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Duration(s.hub.writeTimeout)*time.Millisecond))
			s.lock.Unlock()
			if err != nil {
				slog.Warn("[Session] write pump ping error", "sessionID", s.id, "err", err)
				_ = s.Close()
				return
			}
		case <-s.ctx.Done():
			return
		}
	}
}
