package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hospital-api/internal/core/auth"
	"hospital-api/internal/domain"
	"hospital-api/internal/transport/http/handler"
	mdw "hospital-api/internal/transport/http/middleware"
)

// Deps 显式传进来，不用包级单例
type Deps struct {
	Log   *zap.Logger
	JWTer *auth.JWTer
	Users domain.UserRepository // 认证中间件解 token 后查用户

	User          *handler.UserHandler
	Patient       *handler.PatientHandler
	Doctor        *handler.DoctorHandler
	Hospital      *handler.HospitalHandler
	Appointment   *handler.AppointmentHandler
	Payment       *handler.PaymentHandler
	MedicalRecord *handler.MedicalRecordHandler
	Review        *handler.ReviewHandler
}

func New(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authed := mdw.Authenticate(d.JWTer, d.Users)
	admin := mdw.RequireRoles(domain.RoleAdmin)

	// 登录注册单独再挂一层每 IP 限速，挡撞库
	loginLimit := mdw.RateLimitPerIP(5, 10)

	users := api.Group("/users")
	{
		users.POST("/register", loginLimit, d.User.Register)
		users.POST("/login", loginLimit, d.User.Login)
		users.GET("/list", d.User.List)
		users.GET("/me", authed, d.User.Me)
		users.PUT("/change-role", authed, admin, d.User.ChangeRole)
		users.PUT("/:id", d.User.Update)
		users.DELETE("/:id", d.User.Delete)
	}

	// 病人分组历史上就没挂鉴权
	patients := api.Group("/patients")
	{
		patients.POST("/register", d.Patient.Create)
		patients.GET("/list", d.Patient.List)
		patients.GET("/:id", d.Patient.Get)
		patients.PUT("/update/:id", d.Patient.Update)
		patients.DELETE("/delete/:id", d.Patient.Delete)
	}

	doctors := api.Group("/doctors", authed)
	{
		doctors.POST("/register", admin, d.Doctor.Create)
		doctors.GET("/list", d.Doctor.List)
		doctors.GET("/:id", d.Doctor.Get)
		doctors.PUT("/update/:id", admin, d.Doctor.Update)
		doctors.DELETE("/delete/:id", admin, d.Doctor.Delete)
	}

	hospitals := api.Group("/hospitals", authed)
	{
		hospitals.POST("/register", admin, d.Hospital.Create)
		hospitals.GET("/list", d.Hospital.List)
		hospitals.GET("/:id", d.Hospital.Get)
		hospitals.PUT("/update/:id", admin, d.Hospital.Update)
		hospitals.DELETE("/delete/:id", admin, d.Hospital.Delete)
	}

	appointments := api.Group("/appointments", authed)
	{
		appointments.POST("/register", d.Appointment.Create)
		appointments.GET("/list", d.Appointment.List)
		appointments.GET("/:id", d.Appointment.Get)
		appointments.PUT("/:id", d.Appointment.Update)
		appointments.DELETE("/:id", admin, d.Appointment.Delete)
	}

	payments := api.Group("/payments", authed, admin)
	{
		payments.POST("/register", d.Payment.Create)
		payments.GET("/list", d.Payment.List)
		payments.GET("/:id", d.Payment.Get)
		payments.PUT("/update/:id", d.Payment.Update)
		payments.DELETE("/delete/:id", d.Payment.Delete)
	}

	staff := mdw.RequireRoles(domain.RoleAdmin, domain.RoleDoctor)
	anyRole := mdw.RequireRoles(domain.RoleAdmin, domain.RoleDoctor, domain.RolePatient)
	records := api.Group("/medicalRecords", authed)
	{
		records.POST("/register", anyRole, d.MedicalRecord.Create)
		records.GET("/list", anyRole, d.MedicalRecord.List)
		records.GET("/:id", anyRole, d.MedicalRecord.Get)
		records.PUT("/update/:id", staff, d.MedicalRecord.Update)
		records.DELETE("/delete/:id", admin, d.MedicalRecord.Delete)
	}

	patientOnly := mdw.RequireRoles(domain.RolePatient)
	reviews := api.Group("/reviews", authed)
	{
		reviews.POST("", patientOnly, d.Review.Create)
		reviews.GET("", staff, d.Review.List)
		reviews.GET("/:id", anyRole, d.Review.Get)
		reviews.PUT("/:id", patientOnly, d.Review.Update)
		reviews.DELETE("/:id", admin, d.Review.Delete)
	}

	return r
}
