package container

import (
	"container/list"
	"sync"
	"time"
)

// 私有化的缓存节点
type cacheEntry[K comparable, V any] struct {
	key      K
	value    V
	expireAt int64
}

// LruCache 缓存 线程安全
// 双向链表维护访问顺序 哈希表维护索引
// expireAt <= 0 表示不过期
type LruCache[K comparable, V any] struct {
	list     *list.List
	indexMap map[K]*list.Element
	capacity int
	lock     sync.Mutex
}

// NewLruCache 创建 lru 缓存
func NewLruCache[K comparable, V any](capacity int) *LruCache[K, V] {
	return &LruCache[K, V]{
		list:     list.New(),
		indexMap: make(map[K]*list.Element),
		capacity: capacity,
	}
}

// Len 获取缓存元素个数
func (lru *LruCache[K, V]) Len() int {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	return len(lru.indexMap)
}

// Put 放入元素到缓存
func (lru *LruCache[K, V]) Put(key K, val V, expireAt int64) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	// 键已存在 更新值并移动到链表头
	if element, ok := lru.indexMap[key]; ok {
		entry := element.Value.(*cacheEntry[K, V])
		entry.value = val
		entry.expireAt = expireAt
		lru.list.MoveToFront(element)
		return
	}
	// 缓存已满 移除最久未使用节点
	if len(lru.indexMap) >= lru.capacity {
		if lastElement := lru.list.Back(); lastElement != nil {
			lastEntry := lastElement.Value.(*cacheEntry[K, V])
			delete(lru.indexMap, lastEntry.key)
			lru.list.Remove(lastElement)
		}
	}
	newEntry := &cacheEntry[K, V]{
		key:      key,
		value:    val,
		expireAt: expireAt,
	}
	lru.indexMap[key] = lru.list.PushFront(newEntry)
}

// Get 获取缓存 过期的节点直接删除
func (lru *LruCache[K, V]) Get(key K) (val V, ok bool) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	element, exist := lru.indexMap[key]
	if !exist {
		return
	}
	entry := element.Value.(*cacheEntry[K, V])
	if entry.expireAt <= 0 || time.Now().UnixNano() < entry.expireAt {
		lru.list.MoveToFront(element)
		return entry.value, true
	}
	// 过期了
	delete(lru.indexMap, key)
	lru.list.Remove(element)
	return
}

// Remove 移除元素
func (lru *LruCache[K, V]) Remove(key K) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, ok := lru.indexMap[key]; ok {
		delete(lru.indexMap, key)
		lru.list.Remove(element)
	}
}
