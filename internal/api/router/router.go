package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"school-portal/backend/config"
	"school-portal/backend/internal/api/handler"
	"school-portal/backend/internal/api/middleware"
	"school-portal/backend/pkg/jwt"
	"school-portal/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1（全部需要认证，Token 由统一身份认证系统签发）──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
	v1.Use(middleware.RateLimit(rdb, 300, time.Minute))
	{
		// 节次配置模块
		periodSettings := v1.Group("/period-settings")
		{
			periodSettings.GET("", h.PeriodSettings.GetSettings)
			periodSettings.PUT("", middleware.RoleAuth("admin"), h.PeriodSettings.UpdateSettings)
		}

		// 课表编辑模块（仅管理员）
		timetable := v1.Group("/timetable", middleware.RoleAuth("admin"))
		{
			timetable.GET("/classes/:classId/grid", h.Timetable.GetGrid)
			timetable.GET("/classes/:classId/cells/:day/:period", h.Timetable.GetCellDraft)
			timetable.PUT("/classes/:classId/cells/:day/:period", h.Timetable.SaveCell)
			timetable.DELETE("/entries/:id", h.Timetable.DeleteEntry)
		}

		// 学生端课表模块（学生看本班，教师与管理员可按路径指定班级）
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/classes/:classId/timetable", h.Dashboard.GetWeeklyTimetable)
		}

		// 假期模块
		holidays := v1.Group("/holidays")
		{
			holidays.GET("", h.Holiday.ListHolidays)
			holidays.POST("", middleware.RoleAuth("admin"), h.Holiday.CreateHoliday)
			holidays.DELETE("/:id", middleware.RoleAuth("admin"), h.Holiday.DeleteHoliday)
		}

		// 参照数据模块（编辑器下拉框）
		v1.GET("/classes", h.Directory.ListClasses)
		v1.GET("/subjects", h.Directory.ListSubjects)
		v1.GET("/teachers", h.Directory.ListTeachers)

		// 导出模块
		export := v1.Group("/export", middleware.RoleAuth("admin", "teacher"))
		{
			export.GET("/classes/:classId/timetable.xlsx", h.Export.ExportXLSX)
			export.GET("/classes/:classId/timetable.ics", h.Export.ExportICS)
		}
	}

	return r
}
