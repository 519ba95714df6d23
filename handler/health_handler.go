package handler

import (
	"context"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	client    *mongo.Client
	startTime time.Time
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{
		client:    client,
		startTime: time.Now(),
	}
}

type systemStats struct {
	Uptime        string  `json:"uptime"`
	GoRoutines    int     `json:"go_routines"`
	HeapAllocMB   float64 `json:"heap_alloc_mb"`
	MemoryPercent float64 `json:"memory_percent"`
	CPUPercent    float64 `json:"cpu_percent"`
}

func (h *HealthHandler) collectSystemStats() systemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := systemStats{
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		GoRoutines:  runtime.NumGoroutine(),
		HeapAllocMB: float64(memStats.HeapAlloc) / 1024 / 1024,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	} else {
		log.Printf("Error getting memory usage: %v", err)
	}

	// Interval 0 reports usage since the previous call instead of
	// blocking the health check for a sampling window.
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		stats.CPUPercent = percentages[0]
	} else if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
	}

	return stats
}

// Check handles GET /health: a DB ping plus process and system stats.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx, nil); err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"message":   "Database connection failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "connected",
		"message":   "MongoDB connection successful",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"system":    h.collectSystemStats(),
	})
}
