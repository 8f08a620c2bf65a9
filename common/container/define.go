package container

type None struct{}

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

// Number 数值约束
// 跨度统计需要对元素做减法 仅有 cmp.Ordered 不够
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
