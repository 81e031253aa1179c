package cart

import (
	"sync"
)

// Manager 会话购物车管理器
// 设计说明:
// 1. 按会话ID管理购物车:每个活跃会话一个Cart,避免进程级单例状态
// 2. 只存内存:购物车是瞬态数据,进程重启即清空(有意不持久化)
// 3. 会话ID由HTTP层的Session中间件签发(Cookie携带)
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager 创建购物车管理器
func NewManager() *Manager {
	return &Manager{
		carts: make(map[string]*Cart),
	}
}

// GetOrCreate 获取会话的购物车,不存在则创建空购物车
func (m *Manager) GetOrCreate(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}

// Remove 移除会话的购物车(会话结束时释放内存)
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
