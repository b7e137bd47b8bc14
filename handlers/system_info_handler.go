package handlers

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"ffinfo-bot/bot"
	"ffinfo-bot/utils"
	"ffinfo-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfoHandler answers /botstatus with host and process metrics plus
// the size of the usage log.
func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsAdmin(i) && !utils.IsDeveloper(i, b.GetSettings().DeveloperUserIDs) {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	// Get CPU info
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	// Get memory info
	vm, _ := mem.VirtualMemory()

	// Get host info
	hostInfo, _ := host.Info()

	var dbSizeKB int64
	if stat, err := os.Stat(b.GetSettings().UsageDBPath); err == nil {
		dbSizeKB = stat.Size() / 1024
	}

	totalLookups, err := database.GetTotalUsageCount(b.DB)
	if err != nil {
		log.Printf("Error counting usage records: %v", err)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Status",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "🐹 Go Version", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPU Count", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU Usage", Value: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Name: "🧠 Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "🗃️ Usage DB Size", Value: fmt.Sprintf("%d KB", dbSizeKB), Inline: true},
			{Name: "🔎 Total Lookups", Value: fmt.Sprintf("%d", totalLookups), Inline: true},
			{Name: "⏱️ WebSocket Latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "⏳ Uptime", Value: time.Since(b.StartedAt).Round(time.Second).String(), Inline: true},
			{Name: "🌐 Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
		},
	}

	utils.SendEphemeralEmbed(s, i, embed)
}
