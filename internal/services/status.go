package services

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// StatusSample is one observation of the sync layer and the process
// hosting it. GatewayMode is "cloud" while remote operations succeed and
// "fallback" after one fails.
type StatusSample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	GatewayMode       string    `json:"gatewayMode"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
}

// CaptureStatus samples the current gateway mode together with process and
// system load. Samples stay in memory; they must remain observable while
// the remote store is down, so nothing here touches it.
func CaptureStatus(gatewayMode string) StatusSample {
	proc, _ := process.NewProcess(int32(os.Getpid()))
	memStat, _ := mem.VirtualMemory()
	processRSS := int64(0)
	processCPU := float64(0)
	if proc != nil {
		rss, _ := proc.MemoryInfo()
		if rss != nil {
			processRSS = int64(rss.RSS)
		}
		cpuPerc, _ := proc.CPUPercent()
		processCPU = cpuPerc / 100.0
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}
	sample := StatusSample{
		CapturedAt:  time.Now().UTC(),
		GatewayMode: gatewayMode,
	}
	if memStat != nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	sample.ProcessRSSBytes = processRSS
	sample.ProcessCpuLoad = processCPU
	sample.SystemCpuLoad = sysCPUValue
	return sample
}

// StatusHub broadcasts samples to connected websocket clients and keeps a
// bounded in-memory history for the admin endpoint.
type StatusHub struct {
	clients map[*websocket.Conn]bool
	ch      chan StatusSample

	mu      sync.Mutex
	history []StatusSample
	keep    int
}

func NewStatusHub(keep int) *StatusHub {
	if keep < 1 {
		keep = 1
	}
	return &StatusHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan StatusSample, 16),
		keep:    keep,
	}
}

func (h *StatusHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			for conn := range h.clients {
				_ = conn.WriteJSON(sample)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *StatusHub) Broadcast(sample StatusSample) {
	h.mu.Lock()
	h.history = append(h.history, sample)
	if len(h.history) > h.keep {
		h.history = h.history[len(h.history)-h.keep:]
	}
	h.mu.Unlock()
	select {
	case h.ch <- sample:
	default:
	}
}

// History returns up to limit samples, oldest first.
func (h *StatusHub) History(limit int) []StatusSample {
	h.mu.Lock()
	defer h.mu.Unlock()
	items := h.history
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	out := make([]StatusSample, len(items))
	copy(out, items)
	return out
}

func (h *StatusHub) Add(conn *websocket.Conn) {
	h.clients[conn] = true
}

func (h *StatusHub) Remove(conn *websocket.Conn) {
	delete(h.clients, conn)
}
