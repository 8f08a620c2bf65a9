package profile

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"strings"
	"text/tabwriter"
)

// ProfileManager 性能分析管理器
// 端点挂到宿主服务的路由上 不自建监听
type ProfileManager struct{}

// NewProfileManager 构造函数
func NewProfileManager() *ProfileManager {
	return &ProfileManager{}
}

// Register 注册性能分析路由
func (p *ProfileManager) Register(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/memory/gc", p.ProcessForceGC)
}

// ProcessForceGC 强制调用一次GC
func (p *ProfileManager) ProcessForceGC(w http.ResponseWriter, r *http.Request) {
	runtime.GC()

	memoryStats := p.getMemoryStats()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "The forced call to GC was successful, memory trace:\n%s\n", memoryStats)
}

// getMemoryStats 获取内存状态字符串
func (p *ProfileManager) getMemoryStats() string {
	var (
		memStats      runtime.MemStats
		memTabBuilder strings.Builder
	)

	runtime.ReadMemStats(&memStats)

	// 使用 tabWriter 对齐列
	tabWriter := tabwriter.NewWriter(&memTabBuilder, 0, 0, 2, ' ', 0)
	// 表头
	fmt.Fprintf(tabWriter, "字段名\t字段值\t说明\n")
	// 添加字段内容
	fmt.Fprintf(tabWriter, "Alloc\t %d \t当前正在使用的堆内存字节数(≈ HeapAlloc)\n", memStats.Alloc)
	fmt.Fprintf(tabWriter, "TotalAlloc\t %d \t程序运行以来累计分配的堆内存总量\n", memStats.TotalAlloc)
	fmt.Fprintf(tabWriter, "Sys\t %d \t向操作系统申请的内存总量 (堆+栈+runtime)\n", memStats.Sys)
	fmt.Fprintf(tabWriter, "HeapAlloc\t %d \t堆上已分配、仍存活的对象字节数\n", memStats.HeapAlloc)
	fmt.Fprintf(tabWriter, "HeapInuse\t %d \t正在使用的堆内存字节数\n", memStats.HeapInuse)
	fmt.Fprintf(tabWriter, "HeapReleased\t %d \t已释放回操作系统的堆内存字节数\n", memStats.HeapReleased)
	fmt.Fprintf(tabWriter, "HeapObjects\t %d \t当前存活的堆对象数\n", memStats.HeapObjects)
	fmt.Fprintf(tabWriter, "NumGC\t %d \t完成的垃圾回收次数\n", memStats.NumGC)
	fmt.Fprintf(tabWriter, "PauseTotalNs\t %d \t垃圾回收累计暂停时间(纳秒)\n", memStats.PauseTotalNs)
	fmt.Fprintf(tabWriter, "GCCPUFraction\t %f \tGC 占用 CPU 时间的比例 (0~1)\n", memStats.GCCPUFraction)

	// 写入
	tabWriter.Flush()
	// 以字符串形式返回
	return memTabBuilder.String()
}
